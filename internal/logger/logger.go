package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New constructs a text logger for one component, honoring LOG_LEVEL.
func New(component string) *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: Level()})
	return slog.New(h).With("component", component)
}

// Level parses LOG_LEVEL, defaulting to info.
func Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
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
