// internal/config/log.go
package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the text logger shared by the frontends.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Logger is NewLogger at the configured level.
func (s Settings) Logger(w io.Writer) *slog.Logger {
	return NewLogger(w, s.LogLevel)
}
