package main

import (
	"github.com/Zuo-Peng/chat-analyzer/internal/open"
	"github.com/spf13/cobra"
)

func openCmd() *cobra.Command {
	var hit int

	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Open the chat export in $EDITOR at a message's line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			result, err := loadTranscript(cfg, log, args[0])
			if err != nil {
				return err
			}

			db, err := openIndex(log, result.Messages)
			if err != nil {
				return err
			}
			defer db.Close()

			return open.Message(db, args[0], hit)
		},
	}

	cmd.Flags().IntVar(&hit, "hit", -1, "Message id to jump to")

	return cmd
}
