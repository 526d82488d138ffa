// Package cli provides common CLI initialization utilities: logging, .env
// loading, configuration, and data-backend selection.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"expenselog/internal/config"
	"expenselog/internal/ledger"
	"expenselog/internal/ledger/csvfile"
	"expenselog/internal/ledger/memory"
)

// SetupLogger initializes structured logging at the given level and sets it
// as the default logger.
func SetupLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// OpenStore selects the ledger store for the configured data backend.
func OpenStore(logger *slog.Logger, cfg *config.Config) ledger.Store {
	switch cfg.DataBackend {
	case "memory":
		logger.Info("Initialized memory backend")
		return memory.New()
	default:
		logger.Info("Initialized csv backend", "file", cfg.LedgerFile)
		return csvfile.New(cfg.LedgerFile)
	}
}
