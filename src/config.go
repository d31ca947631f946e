package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"crosswarped.com/wordsquare"
)

// Config holds the service settings, read from the environment.
type Config struct {
	Port      string `env:"PORT" env-default:"8080"`
	LocalOnly bool   `env:"LOCAL_ONLY" env-default:"false"`

	// BigQuery clue source, used when a request names a wordScope.
	BigQueryProject  string `env:"BQ_PROJECT" env-default:"xword-x"`
	BigQueryTable    string `env:"BQ_TABLE" env-default:"xword-x.FirestoreQuery.all_clues"`
	BigQueryLocation string `env:"BQ_LOCATION" env-default:"US"`

	// Gemini clue writer; disabled when the project is empty.
	GeminiProject string `env:"GCP_PROJECT_ID"`
	GeminiRegion  string `env:"GCP_REGION"`

	DefaultRandomness float64 `env:"DEFAULT_RANDOMNESS" env-default:"0.3"`
	DefaultMaxTries   int     `env:"DEFAULT_MAX_TRIES" env-default:"500"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DefaultMaxTries <= 0 {
		cfg.DefaultMaxTries = wordsquare.DefaultMaxTries
	}
	return cfg, nil
}

// newLogger builds a *slog.Logger from the log settings and installs it as
// the default.
func newLogger(cfg Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
