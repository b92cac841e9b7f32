package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Zuo-Peng/chat-analyzer/internal/config"
	"github.com/Zuo-Peng/chat-analyzer/internal/logging"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transcript = "Messages are end-to-end encrypted.\n" +
	"01/01/23, 10:00 am - Alice: hello\n world\n" +
	"01/01/23, 10:05 am - Bob: <sticker omitted>\n" +
	"31/02/23, 10:06 am - Bob: bad date\n" +
	"02/01/23, 9:00 am - Alice added Carol\n"

func writeTranscript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "WhatsApp Chat with Test.txt")
	require.NoError(t, os.WriteFile(path, []byte(transcript), 0o644))
	return path
}

func TestLoadTranscript(t *testing.T) {
	cfg := config.Default(t.TempDir())
	result, err := loadTranscript(cfg, logging.Discard(), writeTranscript(t))
	require.NoError(t, err)
	assert.Len(t, result.Messages, 3)
	assert.Equal(t, 1, result.Diagnostics.BadTimestamps)

	cfg.MaxBytes = 10
	_, err = loadTranscript(cfg, logging.Discard(), writeTranscript(t))
	assert.ErrorIs(t, err, parse.ErrTooLarge)
}

func TestStatsOptions(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.MediaMarkers = []string{"<sticker omitted>"}

	opts, err := statsOptions(cfg, 0)
	require.NoError(t, err)
	assert.Equal(t, cfg.TopN, opts.TopN)
	assert.True(t, opts.Media.Match("<sticker omitted>"))
	assert.True(t, opts.Media.Match("<Media omitted>"))

	opts, err = statsOptions(cfg, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, opts.TopN)
}

func TestOpenIndex(t *testing.T) {
	cfg := config.Default(t.TempDir())
	result, err := loadTranscript(cfg, logging.Discard(), writeTranscript(t))
	require.NoError(t, err)

	db, err := openIndex(logging.Discard(), result.Messages)
	require.NoError(t, err)
	defer db.Close()

	results, err := search.Search(db, search.Options{Query: "world"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].ID)
	assert.Equal(t, 2, results[0].Line)
}

func TestColorizeSnippet(t *testing.T) {
	assert.Equal(t, "a "+sColorBoldRed+"b"+sColorReset, colorizeSnippet("a >>>b<<<"))
}
