package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "wca",
		Short:   "WhatsApp chat analyzer - statistics, search and previews for exported chats",
		Version: version,
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(sendersCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
