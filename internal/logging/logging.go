package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a text logger at the named level (debug, info, warn or error).
// Unknown names fall back to warn.
func New(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelWarn
	}
	return l
}

// Discard is a logger for tests and quiet runs.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
