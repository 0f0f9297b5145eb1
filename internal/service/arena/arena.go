package arena

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/iamasit07/portfolio-connect4/internal/domain"
	"github.com/iamasit07/portfolio-connect4/internal/service/bot"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Arena plays the minimax AI against the greedy sparring bot. The AI always
// holds domain.AI; the side that opens alternates between games.
type Arena struct {
	Searcher *bot.Searcher
	Workers  int
	Seed     int64
	log      zerolog.Logger
}

type GameResult struct {
	Index  int
	Winner domain.PlayerID
	Moves  int
}

type Summary struct {
	Games        int
	AIWins       int
	SparringWins int
	Draws        int
	Moves        int
	AIRating     int
	Duration     time.Duration
}

func (s Summary) AIWinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.AIWins) / float64(s.Games)
}

func New(searcher *bot.Searcher, workers int, seed int64, logger zerolog.Logger) *Arena {
	if workers < 1 {
		workers = 1
	}
	return &Arena{Searcher: searcher, Workers: workers, Seed: seed, log: logger}
}

// Run plays games in parallel and stops early when ctx is cancelled.
func (a *Arena) Run(ctx context.Context, games int) (Summary, error) {
	if games < 0 {
		return Summary{}, fmt.Errorf("arena: negative game count %d", games)
	}

	started := time.Now()
	results := make([]GameResult, games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Workers)

	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			res, err := a.PlayGame(ctx, i)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Games: games, AIRating: RateAI(results), Duration: time.Since(started)}
	for _, res := range results {
		summary.Moves += res.Moves
		switch res.Winner {
		case domain.AI:
			summary.AIWins++
		case domain.Empty:
			summary.Draws++
		default:
			summary.SparringWins++
		}
	}

	a.log.Info().
		Int("games", summary.Games).
		Int("ai_wins", summary.AIWins).
		Int("sparring_wins", summary.SparringWins).
		Int("draws", summary.Draws).
		Int("ai_rating", summary.AIRating).
		Dur("took", summary.Duration).
		Msg("arena finished")

	return summary, nil
}

// PlayGame plays game number index to the end. Odd games are opened by the AI.
func (a *Arena) PlayGame(ctx context.Context, index int) (GameResult, error) {
	rng := rand.New(rand.NewSource(a.Seed + int64(index)))
	g := domain.NewGame()
	if index%2 == 1 {
		g.CurrentPlayer = domain.AI
	}

	for !g.IsFinished() {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}

		var column int
		if g.CurrentPlayer == domain.AI {
			column = a.Searcher.Search(g.Board, domain.AI).Column
		} else {
			column = bot.GreedyMove(g.Board, g.CurrentPlayer, rng)
		}

		if _, err := g.MakeMove(g.CurrentPlayer, column); err != nil {
			return GameResult{}, fmt.Errorf("game %d move %d: %w", index, g.MoveCount+1, err)
		}
	}

	a.log.Debug().
		Int("game", index).
		Str("winner", g.Winner.String()).
		Int("moves", g.MoveCount).
		Msg("game finished")

	return GameResult{Index: index, Winner: g.Winner, Moves: g.MoveCount}, nil
}
