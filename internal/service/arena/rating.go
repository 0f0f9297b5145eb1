package arena

import (
	"math"

	"github.com/iamasit07/portfolio-connect4/internal/domain"
)

const (
	KFactor = 32.0

	// both sides start here; the sparring bot's rating stays fixed so the
	// AI's rating reads as strength relative to it
	BaseRating = 1200
)

// UpdateRating returns the new rating for a player rated rating after a game
// against opponent. score is 1 for a win, 0.5 for a draw and 0 for a loss.
func UpdateRating(rating, opponent int, score float64) int {
	expected := 1.0 / (1.0 + math.Pow(10.0, float64(opponent-rating)/400.0))
	next := float64(rating) + KFactor*(score-expected)

	if next < 0 {
		return 0
	}
	return int(math.Round(next))
}

// RateAI replays results in order and returns the AI's final rating.
func RateAI(results []GameResult) int {
	rating := BaseRating
	for _, res := range results {
		rating = UpdateRating(rating, BaseRating, aiScore(res.Winner))
	}
	return rating
}

func aiScore(winner domain.PlayerID) float64 {
	switch winner {
	case domain.AI:
		return 1
	case domain.Empty:
		return 0.5
	}
	return 0
}
