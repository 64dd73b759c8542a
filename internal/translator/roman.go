package translator

import (
	"strings"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/numeral"
	"github.com/valpere/romawi/internal/tokenizer"
)

// RomanToText decodes comma-separated numerals into letters.
type RomanToText struct{}

func NewRomanToText() *RomanToText {
	return &RomanToText{}
}

func (s *RomanToText) Name() string {
	return "roman-to-text"
}

func (s *RomanToText) Mode() internal.Mode {
	return internal.RomanToText
}

// Translate decodes each word's numeral tokens and concatenates the letters.
// Words are joined by a single space; runs of spaces and words without any
// token collapse away.
func (s *RomanToText) Translate(req internal.TranslationRequest) *Result {
	if res := precheck(s, req); res != nil {
		return res
	}

	normalized := tokenizer.NormalizeSeparators(req.Text)

	var words []string
	for _, word := range tokenizer.Words(normalized) {
		tokens := tokenizer.Tokens(word)
		if len(tokens) == 0 {
			continue
		}

		var b strings.Builder
		for _, token := range tokens {
			b.WriteRune(numeral.LetterOrSentinel(numeral.RomanToValue(token)))
		}
		words = append(words, b.String())
	}

	return &Result{
		ServiceName: s.Name(),
		Mode:        s.Mode(),
		Input:       req.Text,
		Output:      strings.Join(words, " "),
	}
}
