package main

import (
	"fmt"

	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/spf13/cobra"
)

func previewCmd() *cobra.Command {
	var hit int
	var context int
	var query string

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Preview the messages around a search hit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("context") {
				context = cfg.Context
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

			out, _, err := render.Conversation(db, render.Options{
				Title:   args[0],
				Hit:     hit,
				Context: context,
				Query:   query,
			})
			if err != nil {
				return err
			}

			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().IntVar(&hit, "hit", -1, "Message id to highlight")
	cmd.Flags().IntVar(&context, "context", 3, "Messages before/after hit to show (default from config)")
	cmd.Flags().StringVar(&query, "query", "", "Search query for keyword highlighting")

	return cmd
}
