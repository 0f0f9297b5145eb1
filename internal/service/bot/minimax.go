package bot

import (
	"fmt"
	"math"

	"github.com/iamasit07/portfolio-connect4/internal/domain"
	"github.com/rs/zerolog"
)

const (
	DefaultDepth = 4
	// WinScore is returned for a decided position, offset by the remaining
	// depth so faster wins and slower losses rank higher.
	WinScore = 10000
)

type Stats struct {
	Nodes   int
	Leaves  int
	Cutoffs int
}

type ColumnScore struct {
	Column int
	Score  int
}

type Result struct {
	Column int
	Score  int
	Scores []ColumnScore
	Stats  Stats
}

// Searcher runs minimax with alpha-beta pruning. It keeps no state between
// calls and is safe for concurrent use.
type Searcher struct {
	Depth   int
	Weights Weights
	Log     zerolog.Logger
}

func NewSearcher(depth int, weights Weights, logger zerolog.Logger) *Searcher {
	return &Searcher{Depth: depth, Weights: weights, Log: logger}
}

// SearchBestMove picks the column for aiPlayer with the default weights.
func SearchBestMove(board domain.Board, aiPlayer domain.PlayerID, depth int) int {
	s := Searcher{Depth: depth, Weights: DefaultWeights, Log: zerolog.Nop()}
	return s.Search(board, aiPlayer).Column
}

// Search tries every legal column for aiPlayer and scores the reply tree.
// Strictly greater scores win, so ties go to the leftmost column. The board
// is taken by value and never written back. Calling Search without a legal
// move is a programming error and panics.
func (s *Searcher) Search(board domain.Board, aiPlayer domain.PlayerID) Result {
	validColumns := board.LegalColumns()
	if len(validColumns) == 0 {
		panic(fmt.Sprintf("bot: search on a board with no legal moves\n%s", board))
	}

	human := aiPlayer.Opponent()
	result := Result{
		Column: validColumns[0],
		Score:  math.MinInt32,
		Scores: make([]ColumnScore, 0, len(validColumns)),
	}

	for _, col := range validColumns {
		testBoard := board
		if _, err := testBoard.DropPiece(col, aiPlayer); err != nil {
			panic(fmt.Sprintf("bot: drop in legal column %d: %v", col, err))
		}

		score := s.minimax(&testBoard, s.Depth, math.MinInt32, math.MaxInt32, false, aiPlayer, human, &result.Stats)
		result.Scores = append(result.Scores, ColumnScore{Column: col, Score: score})

		if score > result.Score {
			result.Score = score
			result.Column = col
		}
	}

	s.Log.Debug().
		Int("column", result.Column).
		Int("score", result.Score).
		Int("depth", s.Depth).
		Int("nodes", result.Stats.Nodes).
		Int("leaves", result.Stats.Leaves).
		Int("cutoffs", result.Stats.Cutoffs).
		Msg("search complete")

	return result
}

func (s *Searcher) minimax(board *domain.Board, depth int, alpha, beta int, isMaximizing bool, botPlayer, opponent domain.PlayerID, stats *Stats) int {
	stats.Nodes++

	// Terminal conditions
	if board.HasConnectFour(opponent) {
		return -WinScore - depth
	}
	if board.HasConnectFour(botPlayer) {
		return WinScore + depth
	}
	if depth == 0 || board.IsBoardFull() {
		stats.Leaves++
		return s.Weights.Evaluate(board, botPlayer) - s.Weights.Evaluate(board, opponent)
	}

	validColumns := board.LegalColumns()

	if isMaximizing {
		maxEval := math.MinInt32
		for _, col := range validColumns {
			testBoard := *board
			testBoard.DropPiece(col, botPlayer)

			eval := s.minimax(&testBoard, depth-1, alpha, beta, false, botPlayer, opponent, stats)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, maxEval)

			if alpha >= beta {
				stats.Cutoffs++
				break
			}
		}
		return maxEval
	}

	minEval := math.MaxInt32
	for _, col := range validColumns {
		testBoard := *board
		testBoard.DropPiece(col, opponent)

		eval := s.minimax(&testBoard, depth-1, alpha, beta, true, botPlayer, opponent, stats)
		minEval = min(minEval, eval)
		beta = min(beta, minEval)

		if alpha >= beta {
			stats.Cutoffs++
			break
		}
	}
	return minEval
}
