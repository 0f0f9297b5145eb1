package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/portfolio-connect4/internal/config"
	"github.com/iamasit07/portfolio-connect4/internal/logging"
	"github.com/iamasit07/portfolio-connect4/internal/service/arena"
	"github.com/iamasit07/portfolio-connect4/internal/service/bot"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	games := flag.Int("games", cfg.SelfPlayGames, "Number of games to play")
	workers := flag.Int("workers", cfg.SelfPlayWorkers, "Number of games played in parallel")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the sparring bot")
	depth := flag.Int("depth", cfg.SearchDepth, "Minimax search depth")
	flag.Parse()

	cfg.SearchDepth = *depth
	cfg.SelfPlayGames = *games
	cfg.SelfPlayWorkers = *workers
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.New(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	searcher := bot.NewSearcherFromConfig(cfg, logging.Component(logger, "bot"))
	a := arena.New(searcher, cfg.SelfPlayWorkers, *seed, logging.Component(logger, "arena"))

	logger.Info().
		Int("games", cfg.SelfPlayGames).
		Int("workers", cfg.SelfPlayWorkers).
		Int("depth", cfg.SearchDepth).
		Int64("seed", *seed).
		Msg("self-play starting")

	summary, err := a.Run(ctx, cfg.SelfPlayGames)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn().Msg("self-play interrupted")
			os.Exit(130)
		}
		logger.Fatal().Err(err).Msg("self-play failed")
	}

	fmt.Printf("games: %d  ai wins: %d  sparring wins: %d  draws: %d\n",
		summary.Games, summary.AIWins, summary.SparringWins, summary.Draws)
	fmt.Printf("ai win rate: %.1f%%  ai rating: %d  avg moves: %.1f  took: %s\n",
		summary.AIWinRate()*100, summary.AIRating, float64(summary.Moves)/float64(max(summary.Games, 1)), summary.Duration.Round(time.Millisecond))
}
