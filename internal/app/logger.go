package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated logger writing to logW. It does not touch the
// global logger. An unrecognised level falls back to info and anything other
// than "json" selects the text handler.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if validLogLevel(levelStr) {
		// UnmarshalText accepts every name validLogLevel does.
		_ = level.UnmarshalText([]byte(levelStr))
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(logW, opts))
	}
	return slog.New(slog.NewTextHandler(logW, opts))
}
