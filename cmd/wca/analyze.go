package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/Zuo-Peng/chat-analyzer/internal/stats"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var sender string
	var system, asJSON bool
	var top int

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Print statistics for an exported chat",
		Long: `Print message, word, media and link counts, the busiest participants,
common words, emoji, timelines, activity maps, sentiment and language for a
chat export. Use --sender or --system to restrict the report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			result, err := loadTranscript(cfg, log, args[0])
			if err != nil {
				return err
			}

			f := stats.Filter{Sender: sender, System: system}
			if sender != "" && !slices.Contains(stats.Senders(result.Messages), sender) {
				return fmt.Errorf("unknown sender %q (see 'wca senders %s')", sender, args[0])
			}

			opts, err := statsOptions(cfg, top)
			if err != nil {
				return err
			}
			report := stats.Build(result.Messages, f, opts)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			render.Report(os.Stdout, report, termWidth())
			return nil
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "Only messages from this participant")
	cmd.Flags().BoolVar(&system, "system", false, "Only group notifications")
	cmd.Flags().IntVar(&top, "top", 0, "Number of common words to show (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.MarkFlagsMutuallyExclusive("sender", "system")

	return cmd
}
