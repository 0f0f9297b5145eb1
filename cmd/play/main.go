package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/portfolio-connect4/internal/config"
	"github.com/iamasit07/portfolio-connect4/internal/logging"
	"github.com/iamasit07/portfolio-connect4/internal/service/bot"
	"github.com/iamasit07/portfolio-connect4/internal/service/game"
	"github.com/iamasit07/portfolio-connect4/internal/transport/tui"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// the terminal belongs to the UI, so logs only go to LOG_FILE
	out, err := logging.OpenOutput(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer out.Close()

	logger := logging.New(cfg, out)

	searcher := bot.NewSearcherFromConfig(cfg, logging.Component(logger, "bot"))
	session := game.NewSession(searcher, logging.Component(logger, "session"))
	model := tui.New(session, cfg.AIDelay, logging.Component(logger, "tui"))

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error().Err(err).Msg("ui exited")
		log.Fatalf("UI error: %v", err)
	}
}
