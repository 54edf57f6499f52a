package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quasar-search/quasar"
)

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 100))
	assert.Equal(t, "abc...", preview("abcdef", 3))
	// マルチバイトでもルーン単位で切る
	assert.Equal(t, "日本...", preview("日本昔ばなし", 2))
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, "cats", []quasar.SearchResult{
		{
			ID:    1,
			Score: 2,
			Document: quasar.Document{
				Title:   "Cats and Dogs",
				Content: "Cats are great pets. Dogs are loyal pets.",
				URL:     "https://example.com/pets",
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Found 1 results for 'cats':")
	assert.Contains(t, out, "1. Cats and Dogs (Score: 2.00)")
	assert.Contains(t, out, "ID: 1")
	assert.Contains(t, out, "URL: https://example.com/pets")
}

func TestPrintResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, "birds", nil)
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestCLISeedAndSearch(t *testing.T) {
	t.Setenv("QUASAR_DATA_DIR", t.TempDir())

	seed := newRootCmd()
	seed.SetArgs([]string{"seed"})
	require.NoError(t, seed.Execute())

	var buf bytes.Buffer
	search := newRootCmd()
	search.SetOut(&buf)
	search.SetArgs([]string{"search", "python", "--max-results", "3"})
	require.NoError(t, search.Execute())

	assert.Contains(t, buf.String(), "Python Programming Basics")
}
