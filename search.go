package quasar

import "sort"

type SearchResult struct {
	ID       DocumentID `json:"id"`
	Score    float64    `json:"score"`
	Document Document   `json:"document"`
}

// Search ranks documents against a free-text query by summed term frequency:
// for every query term, each posting contributes its occurrence count to the
// document's score. Results are ordered by score descending with ascending
// document ID as tie-break, truncated to maxResults. A query that normalizes
// to nothing, or maxResults <= 0, yields no results.
func (e *Engine) Search(query string, maxResults int) []SearchResult {
	tokenStream := e.analyzer.Analyze(query)
	if tokenStream.Size() == 0 || maxResults <= 0 {
		return []SearchResult{}
	}

	scores := make(map[DocumentID]float64)
	for _, term := range tokenStream.Terms() {
		for id, frequency := range e.index[term] {
			scores[id] += float64(frequency)
		}
	}

	ranked := make([]SearchResult, 0, len(scores))
	for id, score := range scores {
		ranked = append(ranked, SearchResult{ID: id, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	results := make([]SearchResult, 0, len(ranked))
	for _, r := range ranked {
		doc, ok := e.documents[r.ID]
		if !ok {
			// ストアに存在しないIDはスキップする
			continue
		}
		r.Document = doc
		results = append(results, r)
	}
	return results
}
