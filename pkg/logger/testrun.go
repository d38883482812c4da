package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler swallows output so tests stay quiet.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
