package logger

import (
	"log/slog"
	"os"
	"strings"
)

// HandlerFactory builds a slog.Handler for the given minimum level.
type HandlerFactory func(level slog.Level) slog.Handler

func New(level string, handler HandlerFactory) *slog.Logger {
	h := handler(getSlogLevel(level))
	return slog.New(h)
}

// ForFormat picks the handler used by the service: "text" for local runs,
// anything else for the Cloud Run JSON output.
func ForFormat(format string) HandlerFactory {
	switch strings.ToLower(format) {
	case "text":
		return NewTextHandler
	default:
		return NewCloudRunHandler
	}
}

func NewTextHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
}

// ---- Helpers ----
func getSlogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
