// Package logger configures the application's structured logging.
//
// It builds the single base zerolog.Logger the rest of the application
// derives request-scoped loggers from.
package logger

import (
	"os"

	"calculator-service/internal/config"
	"github.com/rs/zerolog"
)

// New constructs the application logger from the observability config.
//
// Format "console" writes human-friendly output to stderr; anything else
// produces JSON (the default, friendly to log pipelines). Every entry is
// tagged with the service name and environment for correlation.
func New(cfg *config.ObservabilityConfig) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("env", cfg.Environment).
		Logger()

	return &logger
}
