package quasar

import (
	"strings"
	"unicode"
)

type Tokenizer interface {
	Tokenize(string) TokenStream
}

// StandardTokenizer splits text on word boundaries. Letters and digits are
// token constituents; punctuation and whitespace are not.
type StandardTokenizer struct{}

func NewStandardTokenizer() StandardTokenizer {
	return StandardTokenizer{}
}

func (t StandardTokenizer) Tokenize(s string) TokenStream {
	terms := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		tokens[i] = NewToken(term)
	}
	return NewTokenStream(tokens)
}
