package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
		"loud":  slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)
	log.Debug("hidden")
	log.Info("parsed", "messages", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=parsed")
	assert.Contains(t, out, "messages=3")
}
