package domain

import "fmt"

type Game struct {
	Board         Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
	LastMove      *Move
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Human,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
	}
}

// MakeMove plays column for player. Every rejection wraps ErrIllegalMove and
// leaves the board untouched.
func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.Status != StatusActive {
		return -1, fmt.Errorf("%w: %w", ErrIllegalMove, ErrGameOver)
	}

	if player != g.CurrentPlayer {
		return -1, fmt.Errorf("%w: %w", ErrIllegalMove, ErrNotYourTurn)
	}

	if column < 0 || column >= Columns {
		return -1, fmt.Errorf("%w: column %d out of range", ErrIllegalMove, column)
	}

	if !g.Board.IsColumnPlayable(column) {
		return -1, fmt.Errorf("%w: column %d is full", ErrIllegalMove, column)
	}

	row, err := g.Board.DropPiece(column, player)
	if err != nil {
		// legality was checked above, so this is a broken invariant
		return -1, fmt.Errorf("drop after legality check: %w", err)
	}

	g.MoveCount++
	g.LastMove = &Move{Row: row, Column: column, Player: player}

	if g.Board.HasConnectFour(player) {
		g.Status = StatusWon
		g.Winner = player
		return row, nil
	}

	if g.Board.IsBoardFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = player.Opponent()

	return row, nil
}

// IsFinished reports whether the game was won or drawn.
func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
