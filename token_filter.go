package quasar

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		lower := strings.ToLower(token.Term)
		r[i] = NewToken(lower)
	}
	return NewTokenStream(r)
}

// AlphabeticFilter drops tokens that are not purely alphabetic, so terms like
// "ipv6" or "2024" never reach the index.
type AlphabeticFilter struct{}

func NewAlphabeticFilter() AlphabeticFilter {
	return AlphabeticFilter{}
}

func (f AlphabeticFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if isAlphabetic(token.Term) {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

type StopWordFilter struct {
	stopWords []string
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	return StopWordFilter{
		stopWords: stopWords,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	stopwords := make(map[string]struct{})
	for _, w := range f.stopWords {
		stopwords[w] = struct{}{}
	}
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := stopwords[token.Term]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		stemmed := english.Stem(token.Term, false)
		r[i] = NewToken(stemmed)
	}
	return NewTokenStream(r)
}
