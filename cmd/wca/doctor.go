package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/chat-analyzer/internal/scan"
	"github.com/Zuo-Peng/chat-analyzer/internal/stats"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [file]",
		Short: "Self-check: verify config, exports dir, FTS5, and parse a chat",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  log_level: %s\n", cfg.LogLevel)
			fmt.Printf("  max_bytes: %s\n", humanize.IBytes(uint64(cfg.MaxBytes)))
			fmt.Printf("  top_n:     %d\n", cfg.TopN)
			fmt.Printf("  context:   %d\n", cfg.Context)
			fmt.Printf("  media_markers: %d extra\n", len(cfg.MediaMarkers))

			fmt.Println("\n=== Exports ===")
			checkDir("transcripts_dir", cfg.TranscriptsDir)
			if files, err := scan.Transcripts(cfg.TranscriptsDir); err != nil {
				fmt.Printf("  scan error: %v\n", err)
			} else {
				fmt.Printf("  Chat exports: %d\n", len(files))
			}

			if len(args) == 0 {
				return nil
			}

			fmt.Println("\n=== Parse ===")
			result, err := loadTranscript(cfg, log, args[0])
			if err != nil {
				fmt.Printf("  Status: FAILED (%v)\n", err)
				return nil
			}
			d := result.Diagnostics
			fmt.Printf("  Boundaries:     %d\n", result.Boundaries)
			fmt.Printf("  Messages:       %d\n", len(result.Messages))
			fmt.Printf("  Bad timestamps: %d\n", d.BadTimestamps)
			fmt.Printf("  Bad encoding:   %d\n", d.BadEncoding)
			for _, e := range d.Errors {
				fmt.Printf("    %v\n", e)
			}
			fmt.Printf("  Senders:        %d\n", len(stats.Senders(result.Messages)))

			fmt.Println("\n=== FTS5 ===")
			db, err := openIndex(log, result.Messages)
			if err != nil {
				fmt.Printf("  FTS5 error: %v\n", err)
				return nil
			}
			defer db.Close()

			msgCount, err := db.MessageCount()
			if err != nil {
				return fmt.Errorf("count messages: %w", err)
			}
			ftsCount, err := db.FTSCount()
			if err != nil {
				fmt.Printf("  FTS5 error: %v\n", err)
				return nil
			}
			fmt.Printf("  FTS5 entries: %d\n", ftsCount)
			if ftsCount == msgCount {
				fmt.Println("  Status: OK (synced)")
			} else {
				fmt.Printf("  Status: MISMATCH (messages=%d, fts=%d)\n", msgCount, ftsCount)
			}
			return nil
		},
	}
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
