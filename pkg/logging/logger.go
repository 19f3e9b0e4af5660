// Package logging configures the structured logger used across othctl.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a human-readable text logger writing to w.
// Only warnings and errors are shown unless verbose is set or LOG_LEVEL=debug.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose || strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}

// Setup installs the logger as the process-wide default
func Setup(verbose bool) *slog.Logger {
	logger := NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)
	return logger
}
