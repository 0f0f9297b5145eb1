package domain

import (
	"fmt"
	"strings"
)

// Board is the 6x7 grid. Row 0 is the top, row 5 the bottom.
// It is an array, so plain assignment gives an independent copy.
type Board [Rows][Columns]PlayerID

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// InBounds reports whether (row, column) lies on the board.
func InBounds(row, column int) bool {
	return row >= 0 && row < Rows && column >= 0 && column < Columns
}

func (b *Board) IsColumnPlayable(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here b[0] represents the top row (0 -> top and 5 -> bottom)
	return b[0][column] == Empty
}

// DropPiece lets the piece fall to the lowest empty cell of the column and
// returns the row it landed in.
func (b *Board) DropPiece(column int, player PlayerID) (int, error) {
	if column < 0 || column >= Columns {
		return -1, fmt.Errorf("%w: column %d out of range", ErrIllegalMove, column)
	}

	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			b[row][column] = player
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// LegalColumns lists the playable columns left to right. An empty result
// means the board is full.
func (b *Board) LegalColumns() []int {
	validMoves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b[0][col] == Empty {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

func (b *Board) IsBoardFull() bool {
	for c := 0; c < Columns; c++ {
		if b[0][c] == Empty {
			return false
		}
	}

	return true
}

// Count returns how many cells hold player.
func (b *Board) Count(player PlayerID) int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b[r][c] == player {
				n++
			}
		}
	}
	return n
}

// SimulateMove drops the piece on a copy and leaves the original untouched.
func SimulateMove(board Board, column int, player PlayerID) (Board, int, error) {
	row, err := board.DropPiece(column, player)
	if err != nil {
		return board, -1, err
	}
	return board, row, nil
}

const (
	emptySymbol   = '.'
	player1Symbol = 'X'
	player2Symbol = 'O'
)

// String renders the board top row first, one line per row.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Columns + 1))
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			switch b[r][c] {
			case Player1:
				sb.WriteByte(player1Symbol)
			case Player2:
				sb.WriteByte(player2Symbol)
			default:
				sb.WriteByte(emptySymbol)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads the format produced by String. Blank lines and
// surrounding spaces are ignored. Floating pieces are rejected.
func ParseBoard(s string) (Board, error) {
	var board Board

	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != Rows {
		return board, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Rows, len(lines))
	}

	for r, line := range lines {
		if len(line) != Columns {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, r, len(line))
		}
		for c := 0; c < Columns; c++ {
			switch line[c] {
			case emptySymbol:
			case player1Symbol:
				board[r][c] = Player1
			case player2Symbol:
				board[r][c] = Player2
			default:
				return board, fmt.Errorf("%w: unknown symbol %q at (%d,%d)", ErrInvalidBoard, line[c], r, c)
			}
		}
	}

	// gravity: nothing may rest on an empty cell
	for r := 0; r < Rows-1; r++ {
		for c := 0; c < Columns; c++ {
			if board[r][c] != Empty && board[r+1][c] == Empty {
				return board, fmt.Errorf("%w: floating piece at (%d,%d)", ErrInvalidBoard, r, c)
			}
		}
	}

	return board, nil
}

// MustParseBoard is ParseBoard for fixed literals.
func MustParseBoard(s string) Board {
	board, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return board
}
