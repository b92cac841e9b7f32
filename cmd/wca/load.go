package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Zuo-Peng/chat-analyzer/internal/config"
	"github.com/Zuo-Peng/chat-analyzer/internal/index"
	"github.com/Zuo-Peng/chat-analyzer/internal/logging"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/stats"
	"golang.org/x/term"
)

func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, logging.New(cfg.LogLevel, os.Stderr), nil
}

// loadTranscript parses path and reports dropped records on the log.
func loadTranscript(cfg *config.Config, log *slog.Logger, path string) (*parse.Result, error) {
	result, err := parse.File(path, cfg.MaxBytes)
	if err != nil {
		return nil, err
	}

	d := result.Diagnostics
	for _, e := range d.Errors {
		log.Debug("dropped record", "file", path, "err", e)
	}
	if d.Dropped() > 0 {
		log.Warn("some records were dropped",
			"file", path,
			"bad_timestamps", d.BadTimestamps,
			"bad_encoding", d.BadEncoding,
			"kept", len(result.Messages))
	}
	log.Info("parsed transcript", "file", path, "messages", len(result.Messages))
	return result, nil
}

// openIndex builds the in-memory search index for msgs.
func openIndex(log *slog.Logger, msgs []parse.Message) (*index.DB, error) {
	db, err := index.Open()
	if err != nil {
		return nil, err
	}
	st, err := index.Load(db, msgs)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("index: %w", err)
	}
	log.Debug("indexed transcript", "stats", st.String())
	return db, nil
}

func statsOptions(cfg *config.Config, topN int) (stats.Options, error) {
	markers := append(append([]string(nil), stats.DefaultMediaMarkers...), cfg.MediaMarkers...)
	media, err := stats.NewMediaMatcher(markers)
	if err != nil {
		return stats.Options{}, fmt.Errorf("media markers: %w", err)
	}
	if topN <= 0 {
		topN = cfg.TopN
	}
	return stats.Options{TopN: topN, Media: media}, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
