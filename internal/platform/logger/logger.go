// Package logger provides structured logging functionality for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/course-api/internal/config"
)

// ParseLevel maps a configured level name onto a slog.Level. Matching is
// case-insensitive; "fatal" is treated as error since slog has no fatal level.
// The second return value is false when the name is not recognised.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error", "fatal":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New builds a JSON logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	if !ok {
		// This will use the default handler (text output to stderr)
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Setup initializes the application's logging system based on the provided
// configuration. It creates a structured JSON logger on stdout and sets it
// as the default logger, so package-level slog calls share its handler.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	logger := New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger, nil
}
