package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show search engine statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			stats, err := engine.Stats()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Search Engine Statistics:")
			fmt.Fprintf(out, "  Total documents: %d\n", stats.TotalDocuments)
			fmt.Fprintf(out, "  Total terms: %d\n", stats.TotalTerms)
			fmt.Fprintf(out, "  Index size: %d bytes\n", stats.IndexSizeBytes)
			return nil
		},
	}
}
