package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quasar-search/quasar"
)

func newAddCmd() *cobra.Command {
	var (
		id      int
		title   string
		content string
		url     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a document to the index",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			if err := engine.AddDocument(quasar.DocumentID(id), title, content, url); err != nil {
				return err
			}
			slog.Debug("document indexed", "id", id, "title", title)
			fmt.Printf("Added document %d: '%s'\n", id, title)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Document ID")
	cmd.Flags().StringVar(&title, "title", "", "Document title")
	cmd.Flags().StringVar(&content, "content", "", "Document content")
	cmd.Flags().StringVar(&url, "url", "", "Document URL (optional)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("content")
	return cmd
}
