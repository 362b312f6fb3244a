package app

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger from LOG_FORMAT. "json" emits one
// object per line with source locations for log shippers, "text" is logfmt
// with source locations, and the default "pretty" is logfmt without them
// for local development. The result is also installed as slog's default.
func NewLogger(cfg *Config) *slog.Logger {
	var handler slog.Handler
	switch {
	case cfg != nil && cfg.LogFormat == "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true})
	case cfg != nil && cfg.LogFormat == "text":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true})
	default:
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
