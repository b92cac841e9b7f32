package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/chat-analyzer/internal/stats"
	"github.com/Zuo-Peng/chat-analyzer/internal/tui"
	"github.com/spf13/cobra"
)

func sendersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "senders <file>",
		Short: "Browse participants and their reports",
		Long: `Opens a TUI listing the whole chat, every participant and the group
notifications; the right panel shows the selected report. When stdout is not
a terminal, prints sender, message count and share as TSV instead.`,
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

			// Interactive TUI when stdout is a terminal; TSV output for pipes
			if isTerminal() {
				opts, err := statsOptions(cfg, 0)
				if err != nil {
					return err
				}
				return tui.Run(result.Messages, opts, os.Stdout)
			}

			freq := stats.BusyUsers(result.Messages, 0)
			total := freq.Total()
			for _, c := range freq {
				fmt.Printf("%s\t%d\t%.2f\n", c.Key, c.Count, float64(c.Count)*100/float64(total))
			}
			return nil
		},
	}
}
