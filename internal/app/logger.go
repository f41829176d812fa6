package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/openshelf/circulation/internal/config"
)

// NewLogger builds the process logger from LogConfig and installs it as
// the slog default.
//
// Format "json" produces structured output for machine consumption;
// anything else falls back to human-readable text with source locations.
// Level is one of debug, info, warn, error (case-insensitive), defaulting
// to info. Output always goes to os.Stderr so command output owns stdout.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	json := strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
