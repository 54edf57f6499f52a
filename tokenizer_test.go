package quasar

import (
	"fmt"
	"reflect"
	"testing"
)

func TestStandardTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected TokenStream
	}{
		{
			text:     "",
			expected: TokenStream{Tokens: []Token{}},
		},
		{
			text:     "small wild,cat!",
			expected: TokenStream{Tokens: []Token{{Term: "small"}, {Term: "wild"}, {Term: "cat"}}},
		},
		{
			text:     "...!? --",
			expected: TokenStream{Tokens: []Token{}},
		},
		{
			text:     "ipv6 routing",
			expected: TokenStream{Tokens: []Token{{Term: "ipv6"}, {Term: "routing"}}},
		},
		{
			text:     "don't stop",
			expected: TokenStream{Tokens: []Token{{Term: "don"}, {Term: "t"}, {Term: "stop"}}},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			tr := NewStandardTokenizer()
			if got := tr.Tokenize(tt.text); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("StandardTokenizer.Tokenize() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
