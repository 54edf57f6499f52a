package quasar

// InvertedIndex maps a term to the documents containing it, with the term's
// occurrence count per document. Frequencies are always >= 1; a term with no
// postings left is removed from the map.
type InvertedIndex map[string]map[DocumentID]int

// Set records the occurrence count of term in the given document.
func (idx InvertedIndex) Set(term string, id DocumentID, count int) {
	postings, ok := idx[term]
	if !ok {
		postings = make(map[DocumentID]int)
		idx[term] = postings
	}
	postings[id] = count
}

// RemoveDocument drops every posting referencing id, deleting terms whose
// posting maps become empty.
func (idx InvertedIndex) RemoveDocument(id DocumentID) {
	for term, postings := range idx {
		if _, ok := postings[id]; !ok {
			continue
		}
		delete(postings, id)
		if len(postings) == 0 {
			delete(idx, term)
		}
	}
}

// TermCounts builds a frequency table over the terms of a token stream.
func TermCounts(tokenStream TokenStream) map[string]int {
	counts := make(map[string]int)
	for _, token := range tokenStream.Tokens {
		counts[token.Term]++
	}
	return counts
}
