package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/quasar-search/quasar"
)

func newSearchCmd() *cobra.Command {
	var maxResults int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), args[0], engine.Search(args[0], maxResults))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxResults, "max-results", 10, "Maximum number of results")
	return cmd
}

func printResults(w io.Writer, query string, results []quasar.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	fmt.Fprintf(w, "Found %d results for '%s':\n\n", len(results), query)
	for i, r := range results {
		fmt.Fprintf(w, "%d. %s (Score: %.2f)\n", i+1, r.Document.Title, r.Score)
		fmt.Fprintf(w, "   ID: %d\n", r.ID)
		if r.Document.URL != "" {
			fmt.Fprintf(w, "   URL: %s\n", r.Document.URL)
		}
		fmt.Fprintf(w, "   Content: %s\n\n", preview(r.Document.Content, 100))
	}
}

// preview truncates content to n runes for terminal display.
func preview(content string, n int) string {
	runes := []rune(content)
	if len(runes) <= n {
		return content
	}
	return string(runes[:n]) + "..."
}
