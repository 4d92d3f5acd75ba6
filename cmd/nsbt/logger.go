package main

import (
	"log/slog"
	"os"
)

// setupLogger builds the slog logger for one command invocation. Logs go to
// stderr so the scenario report on stdout stays clean.
func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
