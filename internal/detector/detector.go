// Package detector guesses which side of the translation a raw input is on.
package detector

import (
	"strings"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/numeral"
	"github.com/valpere/romawi/internal/tokenizer"
	"github.com/valpere/romawi/internal/validator"
)

type Detector struct{}

func New() *Detector {
	return &Detector{}
}

// Detect returns the mode raw should be translated under. Input that is
// valid in both modes ("MIX", "VI") counts as numerals only when it contains
// a comma or every token decodes to a letter. ok is false when raw is valid
// in neither mode.
func (d *Detector) Detect(raw string) (internal.Mode, bool) {
	romanErr := validator.Validate(raw, internal.RomanToText)
	textErr := validator.Validate(raw, internal.TextToRoman)

	switch {
	case romanErr == nil && textErr != nil:
		return internal.RomanToText, true
	case romanErr != nil && textErr == nil:
		return internal.TextToRoman, true
	case romanErr != nil && textErr != nil:
		return internal.RomanToText, false
	}

	if strings.Contains(raw, ",") || allLetters(raw) {
		return internal.RomanToText, true
	}
	return internal.TextToRoman, true
}

// DetectOr is Detect with a fallback for undecidable input.
func (d *Detector) DetectOr(raw string, fallback internal.Mode) internal.Mode {
	if mode, ok := d.Detect(raw); ok {
		return mode
	}
	return fallback
}

func allLetters(raw string) bool {
	tokens := tokenizer.Fields(tokenizer.NormalizeSeparators(raw))
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if _, ok := numeral.PositionToLetter(numeral.RomanToValue(token)); !ok {
			return false
		}
	}
	return true
}
