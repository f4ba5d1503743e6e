// Package logger configures the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New builds a slog.Logger: JSON output in prod, text otherwise.
// The logger is also installed as the slog default.
func New(env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(env, level)}

	var handler slog.Handler
	switch env {
	case "prod":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(env, level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if env == "prod" {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
