package quasar

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSearch(t *testing.T) {
	engine := newTestEngine(t)
	if err := engine.AddDocument(1, "Cats and Dogs", "Cats are great pets. Dogs are loyal pets.", ""); err != nil {
		t.Fatal(err)
	}

	catsAndDogs := Document{Title: "Cats and Dogs", Content: "Cats are great pets. Dogs are loyal pets."}
	cases := []struct {
		query      string
		maxResults int
		expected   []SearchResult
	}{
		{
			query:      "cats",
			maxResults: 10,
			expected:   []SearchResult{{ID: 1, Score: 2, Document: catsAndDogs}},
		},
		{
			query:      "pets",
			maxResults: 10,
			expected:   []SearchResult{{ID: 1, Score: 2, Document: catsAndDogs}},
		},
		{
			query:      "great",
			maxResults: 10,
			expected:   []SearchResult{{ID: 1, Score: 1, Document: catsAndDogs}},
		},
		{
			// 複数の検索語句のスコアは加算される
			query:      "cats dogs",
			maxResults: 10,
			expected:   []SearchResult{{ID: 1, Score: 4, Document: catsAndDogs}},
		},
		{
			query:      "birds",
			maxResults: 10,
			expected:   []SearchResult{},
		},
		{
			query:      "",
			maxResults: 10,
			expected:   []SearchResult{},
		},
		{
			query:      "the the the",
			maxResults: 10,
			expected:   []SearchResult{},
		},
		{
			query:      "cats",
			maxResults: 0,
			expected:   []SearchResult{},
		},
		{
			query:      "cats",
			maxResults: -3,
			expected:   []SearchResult{},
		},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("query = %q, maxResults = %d", tt.query, tt.maxResults), func(t *testing.T) {
			actual := engine.Search(tt.query, tt.maxResults)
			if diff := cmp.Diff(actual, tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestSearchRankingAndTieBreak(t *testing.T) {
	engine := newTestEngine(t)
	if err := engine.AddDocument(3, "Python Basics", "Python python python.", ""); err != nil {
		t.Fatal(err)
	}
	if err := engine.AddDocument(2, "Python Web", "Python for the web.", ""); err != nil {
		t.Fatal(err)
	}
	if err := engine.AddDocument(1, "Python Data", "Python for data.", ""); err != nil {
		t.Fatal(err)
	}

	// スコア降順、同点はID昇順
	results := engine.Search("python", 10)
	ids := make([]DocumentID, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	if diff := cmp.Diff(ids, []DocumentID{3, 1, 2}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}

	results = engine.Search("python", 2)
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}

	// maxResultsがヒット数より大きくてもヒット数だけ返す
	results = engine.Search("python", 100)
	if len(results) != 3 {
		t.Errorf("len(results) = %d, want 3", len(results))
	}
}

func TestSearchSkipsDanglingPosting(t *testing.T) {
	engine := newTestEngine(t)
	if err := engine.AddDocument(1, "Cats", "Cats everywhere.", ""); err != nil {
		t.Fatal(err)
	}
	// インバリアント違反の状態でも落ちずにスキップする
	engine.index.Set("cat", 99, 1)

	results := engine.Search("cats", 10)
	if len(results) != 1 || results[0].ID != 1 {
		t.Errorf("Search(cats) = %v, want only document 1", results)
	}
}
