package bot

import (
	"github.com/iamasit07/portfolio-connect4/internal/config"
	"github.com/rs/zerolog"
)

// NewSearcherFromConfig wires the configured depth and window weights.
func NewSearcherFromConfig(cfg *config.Config, logger zerolog.Logger) *Searcher {
	weights := Weights{
		Four:          cfg.ScoreFour,
		Three:         cfg.ScoreThree,
		Two:           cfg.ScoreTwo,
		OpponentThree: cfg.ScoreOpponentThree,
		OpponentFour:  cfg.ScoreOpponentFour,
	}
	return NewSearcher(cfg.SearchDepth, weights, logger)
}
