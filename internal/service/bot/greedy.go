package bot

import (
	"math/rand"

	"github.com/iamasit07/portfolio-connect4/internal/domain"
)

// GreedyMove wins on the spot if it can, otherwise blocks an immediate
// opponent win, otherwise plays a random legal column. It is the sparring
// partner of the self-play arena. Returns -1 on a full board.
func GreedyMove(board domain.Board, player domain.PlayerID, rng *rand.Rand) int {
	validColumns := board.LegalColumns()
	if len(validColumns) == 0 {
		return -1
	}

	opponent := player.Opponent()

	for _, col := range validColumns {
		testBoard, _, _ := domain.SimulateMove(board, col, player)
		if testBoard.HasConnectFour(player) {
			return col
		}
	}

	for _, col := range validColumns {
		testBoard, _, _ := domain.SimulateMove(board, col, opponent)
		if testBoard.HasConnectFour(opponent) {
			return col
		}
	}

	return validColumns[rng.Intn(len(validColumns))]
}
