package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quasar-search/quasar"
)

type sampleDocument struct {
	id      quasar.DocumentID
	title   string
	content string
	url     string
}

var sampleDocuments = []sampleDocument{
	{
		id:      1,
		title:   "Introduction to Machine Learning",
		content: "Machine learning is a subset of artificial intelligence that focuses on algorithms that can learn from data. It includes supervised learning, unsupervised learning, and reinforcement learning approaches.",
		url:     "https://example.com/ml-intro",
	},
	{
		id:      2,
		title:   "Python Programming Basics",
		content: "Python is a high-level programming language known for its simplicity and readability. It supports multiple programming paradigms including procedural, object-oriented, and functional programming.",
		url:     "https://example.com/python-basics",
	},
	{
		id:      3,
		title:   "Web Development with Flask",
		content: "Flask is a lightweight web framework for Python. It provides tools and libraries to build web applications quickly and efficiently. Flask follows the WSGI standard and is highly extensible.",
		url:     "https://example.com/flask-guide",
	},
	{
		id:      4,
		title:   "Data Structures and Algorithms",
		content: "Understanding data structures like arrays, linked lists, trees, and graphs is fundamental to computer science. Algorithms for searching, sorting, and optimization are essential skills for programmers.",
		url:     "https://example.com/dsa",
	},
	{
		id:      5,
		title:   "Natural Language Processing",
		content: "Natural language processing enables computers to understand and generate human language. Techniques include tokenization, stemming, part-of-speech tagging, and sentiment analysis.",
		url:     "https://example.com/nlp",
	},
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample documents into the index",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(configFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			for _, doc := range sampleDocuments {
				if err := engine.AddDocument(doc.id, doc.title, doc.content, doc.url); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d sample documents.\n", len(sampleDocuments))
			return nil
		},
	}
}
