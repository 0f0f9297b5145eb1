package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SEARCH_DEPTH", "AI_DELAY_MS", "SCORE_FOUR", "SCORE_THREE", "SCORE_TWO",
		"SCORE_OPP_THREE", "SCORE_OPP_FOUR", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.SearchDepth != 4 {
		t.Fatalf("expected depth 4, got %d", cfg.SearchDepth)
	}
	if cfg.AIDelay != 200*time.Millisecond {
		t.Fatalf("expected 200ms delay, got %s", cfg.AIDelay)
	}
	if cfg.ScoreFour != 1000 || cfg.ScoreThree != 10 || cfg.ScoreTwo != 2 ||
		cfg.ScoreOpponentThree != -50 || cfg.ScoreOpponentFour != -10000 {
		t.Fatalf("unexpected default weights: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Fatalf("unexpected log defaults: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SEARCH_DEPTH", "6")
	t.Setenv("AI_DELAY_MS", "0")
	t.Setenv("SCORE_OPP_THREE", "-75")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg := LoadConfig()
	if cfg.SearchDepth != 6 || cfg.AIDelay != 0 || cfg.ScoreOpponentThree != -75 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected lower-cased log format, got %q", cfg.LogFormat)
	}
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SEARCH_DEPTH", "deep")
	if got := GetEnvAsInt("SEARCH_DEPTH", 4); got != 4 {
		t.Fatalf("expected fallback 4, got %d", got)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"depth":   func(c *Config) { c.SearchDepth = 0 },
		"delay":   func(c *Config) { c.AIDelay = -time.Second },
		"format":  func(c *Config) { c.LogFormat = "xml" },
		"workers": func(c *Config) { c.SelfPlayWorkers = 0 },
		"games":   func(c *Config) { c.SelfPlayGames = -1 },
	}
	for name, mutate := range cases {
		cfg := &Config{SearchDepth: 4, LogFormat: "console", SelfPlayWorkers: 1}
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
