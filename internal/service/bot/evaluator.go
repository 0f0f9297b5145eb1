package bot

import (
	"github.com/iamasit07/portfolio-connect4/internal/domain"
)

// Weights are the per-window scores of the static evaluator. The opponent
// entries are added as-is, so they are stored negative.
type Weights struct {
	Four          int
	Three         int
	Two           int
	OpponentThree int
	OpponentFour  int
}

var DefaultWeights = Weights{
	Four:          1000,
	Three:         10,
	Two:           2,
	OpponentThree: -50,
	OpponentFour:  -10000,
}

// windows holds every 4-cell line on the board: horizontal, vertical and
// both diagonals, 69 in total.
var windows = buildWindows()

func buildWindows() [][domain.ToWin]domain.Cell {
	var out [][domain.ToWin]domain.Cell
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			for _, dir := range domain.Directions {
				endRow := row + dir[0]*(domain.ToWin-1)
				endCol := col + dir[1]*(domain.ToWin-1)
				if !domain.InBounds(endRow, endCol) {
					continue
				}
				var w [domain.ToWin]domain.Cell
				for k := range w {
					w[k] = domain.Cell{Row: row + dir[0]*k, Column: col + dir[1]*k}
				}
				out = append(out, w)
			}
		}
	}
	return out
}

// Evaluate scores the board for player with the default weights. Higher is
// better for player.
func Evaluate(board *domain.Board, player domain.PlayerID) int {
	return DefaultWeights.Evaluate(board, player)
}

func (w Weights) Evaluate(board *domain.Board, player domain.PlayerID) int {
	opponent := player.Opponent()
	score := 0

	for _, window := range windows {
		own, opp, empty := 0, 0, 0
		for _, cell := range window {
			switch board[cell.Row][cell.Column] {
			case player:
				own++
			case opponent:
				opp++
			default:
				empty++
			}
		}
		score += w.scoreWindow(own, opp, empty)
	}

	return score
}

// own branches are exclusive among themselves, the opponent checks are not
func (w Weights) scoreWindow(own, opp, empty int) int {
	score := 0
	if own == 4 {
		score += w.Four
	} else if own == 3 && empty == 1 {
		score += w.Three
	} else if own == 2 && empty == 2 {
		score += w.Two
	}
	if opp == 3 && empty == 1 {
		score += w.OpponentThree
	}
	if opp == 4 {
		score += w.OpponentFour
	}
	return score
}
