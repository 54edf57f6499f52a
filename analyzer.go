package quasar

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

// NewStandardAnalyzer is the English analysis chain used for both documents
// and queries: tokenize, lowercase, keep alphabetic tokens, drop stopwords,
// stem. Typographic apostrophes are mapped to ASCII first so contractions
// split the same way regardless of input source.
func NewStandardAnalyzer() Analyzer {
	return NewAnalyzer(
		[]CharFilter{NewMappingCharFilter(map[string]string{"’": "'"})},
		NewStandardTokenizer(),
		[]TokenFilter{
			NewLowercaseFilter(),
			NewAlphabeticFilter(),
			NewStopWordFilter(EnglishStopWords),
			NewStemmerFilter(),
		},
	)
}

func (a Analyzer) Analyze(s string) TokenStream {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream
}
