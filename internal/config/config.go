package config

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SearchDepth int
	AIDelay     time.Duration

	// window weights of the static evaluator
	ScoreFour          int
	ScoreThree         int
	ScoreTwo           int
	ScoreOpponentThree int
	ScoreOpponentFour  int

	LogLevel  string
	LogFormat string
	LogFile   string

	SelfPlayGames   int
	SelfPlayWorkers int
}

func LoadConfig() *Config {
	return &Config{
		SearchDepth: GetEnvAsInt("SEARCH_DEPTH", 4),
		AIDelay:     time.Duration(GetEnvAsInt("AI_DELAY_MS", 200)) * time.Millisecond,

		ScoreFour:          GetEnvAsInt("SCORE_FOUR", 1000),
		ScoreThree:         GetEnvAsInt("SCORE_THREE", 10),
		ScoreTwo:           GetEnvAsInt("SCORE_TWO", 2),
		ScoreOpponentThree: GetEnvAsInt("SCORE_OPP_THREE", -50),
		ScoreOpponentFour:  GetEnvAsInt("SCORE_OPP_FOUR", -10000),

		LogLevel:  strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(GetEnv("LOG_FORMAT", "console")),
		LogFile:   GetEnv("LOG_FILE", ""),

		SelfPlayGames:   GetEnvAsInt("SELFPLAY_GAMES", 20),
		SelfPlayWorkers: GetEnvAsInt("SELFPLAY_WORKERS", runtime.NumCPU()),
	}
}

func (c *Config) Validate() error {
	if c.SearchDepth < 1 {
		return fmt.Errorf("SEARCH_DEPTH must be at least 1, got %d", c.SearchDepth)
	}
	if c.AIDelay < 0 {
		return fmt.Errorf("AI_DELAY_MS must not be negative, got %s", c.AIDelay)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if c.SelfPlayGames < 0 {
		return fmt.Errorf("SELFPLAY_GAMES must not be negative, got %d", c.SelfPlayGames)
	}
	if c.SelfPlayWorkers < 1 {
		return fmt.Errorf("SELFPLAY_WORKERS must be at least 1, got %d", c.SelfPlayWorkers)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
