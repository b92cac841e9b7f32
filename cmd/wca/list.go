package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Zuo-Peng/chat-analyzer/internal/scan"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List chat exports found under a directory",
		Long:  `Lists exported chats under dir (default: transcripts_dir from the config), newest first, as TSV: path, chat, size, modified.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}

			root := cfg.TranscriptsDir
			if len(args) == 1 {
				root = args[0]
			}

			files, err := scan.Transcripts(root)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			if len(files) == 0 {
				fmt.Fprintf(os.Stderr, "No chat exports found under %s\n", root)
				return nil
			}

			for _, f := range files {
				fmt.Printf("%s\t%s\t%s\t%s\n",
					f.Path, f.Chat, humanize.IBytes(uint64(f.Size)),
					time.Unix(f.Mtime, 0).Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
