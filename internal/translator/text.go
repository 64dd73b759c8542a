package translator

import (
	"strings"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/numeral"
	"github.com/valpere/romawi/internal/tokenizer"
)

// TextToRoman encodes letters as comma-separated numerals.
type TextToRoman struct{}

func NewTextToRoman() *TextToRoman {
	return &TextToRoman{}
}

func (s *TextToRoman) Name() string {
	return "text-to-roman"
}

func (s *TextToRoman) Mode() internal.Mode {
	return internal.TextToRoman
}

// Translate encodes every rune of every word. An empty word, produced by
// consecutive spaces, is written as a single space with no separator after
// it, so "A  B" becomes "I  II".
func (s *TextToRoman) Translate(req internal.TranslationRequest) *Result {
	if res := precheck(s, req); res != nil {
		return res
	}

	words := tokenizer.Words(strings.ToUpper(req.Text))

	var b strings.Builder
	for i, word := range words {
		if word == "" {
			b.WriteByte(' ')
			continue
		}

		numerals := make([]string, 0, len(word))
		for _, r := range word {
			numerals = append(numerals, numeral.RomanOrSentinel(numeral.LetterToPosition(r)))
		}
		b.WriteString(strings.Join(numerals, ","))

		if i < len(words)-1 {
			b.WriteByte(' ')
		}
	}

	return &Result{
		ServiceName: s.Name(),
		Mode:        s.Mode(),
		Input:       req.Text,
		Output:      b.String(),
	}
}
