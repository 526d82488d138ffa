package main

import (
	"context"
	"log/slog"
	"os"

	"expenselog/internal/cli"
	"expenselog/internal/config"
	"expenselog/internal/ledger"
	"expenselog/internal/session"
)

func main() {
	cli.LoadEnvFile()

	cfg := config.Load()
	level, levelErr := cfg.SlogLevel()
	if levelErr != nil {
		level = slog.LevelInfo
	}
	logger := cli.SetupLogger(level)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store := cli.OpenStore(logger, cfg)

	l, err := ledger.Open(ctx, store)
	if err != nil {
		logger.Error("Failed to load ledger", "error", err)
		os.Exit(1)
	}

	s := session.New(os.Stdin, os.Stdout, l, logger)
	if err := s.Run(ctx); err != nil {
		logger.Error("Session ended with error", "error", err)
		os.Exit(1)
	}
}
