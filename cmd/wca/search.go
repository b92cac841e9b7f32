package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/search"
	"github.com/spf13/cobra"
)

const (
	sColorReset   = "\033[0m"
	sColorBoldRed = "\033[1;31m"
	sColorBlue    = "\033[1;34m"
	sColorMagenta = "\033[2;35m"
	sColorDim     = "\033[2m"
)

func colorizeSender(r search.Result) string {
	if r.Kind == parse.KindSystem.String() {
		return sColorMagenta + parse.SystemLabel + sColorReset
	}
	return sColorBlue + r.Sender + sColorReset
}

func colorizeSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, ">>>", sColorBoldRed)
	return strings.ReplaceAll(snippet, "<<<", sColorReset)
}

func searchCmd() *cobra.Command {
	var sender, since string
	var system bool
	var limit int

	cmd := &cobra.Command{
		Use:   "search <file> <query>",
		Short: "Full-text search over the messages of a chat export",
		Long: `Search message bodies with SQLite FTS5 (substring match for CJK queries).
Output is TSV for fzf integration:
  id, time, sender, snippet

Recommended shell function (add to .zshrc):
  wcaf() {
    f="$1"; shift
    wca search "$f" "$*" | fzf \
      --ansi \
      --delimiter='\t' --with-nth=2.. \
      --preview "wca preview '$f' --hit {1} --context 5 --query {q}" \
      --preview-window=right:60%:wrap \
      --bind "enter:execute(wca open '$f' --hit {1})"
  }`,
		Args: cobra.ExactArgs(2),
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

			results, err := search.Search(db, search.Options{
				Query:  args[1],
				Sender: sender,
				System: system,
				Since:  since,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No results found.")
				return nil
			}

			for _, r := range results {
				snippet := strings.ReplaceAll(r.Snippet, "\t", " ")
				snippet = strings.ReplaceAll(snippet, "\n", " ")
				// first field (id) stays plain for fzf {1}
				fmt.Printf("%d\t%s%s%s\t%s\t%s\n",
					r.ID,
					sColorDim, strings.Replace(r.Ts, "T", " ", 1), sColorReset,
					colorizeSender(r),
					colorizeSnippet(snippet),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "Filter by participant")
	cmd.Flags().BoolVar(&system, "system", false, "Only group notifications")
	cmd.Flags().StringVar(&since, "since", "", "Only messages on or after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 100, "Max results")
	cmd.MarkFlagsMutuallyExclusive("sender", "system")

	return cmd
}
