// Package main provides the crawler command-line tool for turning Oyez case pages into text reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crawler",
		Short:         "Extract Oyez case documents into label/value reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCrawlCmd())
	root.AddCommand(newCheckCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
