// Package validator checks raw input against the active translation mode.
package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/numeral"
	"github.com/valpere/romawi/internal/tokenizer"
)

var (
	// ErrEmpty is returned for blank or whitespace-only input.
	ErrEmpty = errors.New("input is empty")

	// ErrInvalidCharacterSet is returned when the input contains characters
	// the active mode does not accept.
	ErrInvalidCharacterSet = errors.New("input contains invalid characters")
)

// Validate returns nil when raw can be translated under mode. The whole
// input is checked up front; a single bad token rejects it.
func Validate(raw string, mode internal.Mode) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmpty
	}

	switch mode {
	case internal.RomanToText:
		return validateRoman(raw)
	case internal.TextToRoman:
		return validateText(raw)
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidCharacterSet, int(mode))
	}
}

func validateRoman(raw string) error {
	for _, r := range raw {
		if numeral.IsSymbol(r) || r == ',' || unicode.IsSpace(r) {
			continue
		}
		return fmt.Errorf("%w: %q is not a roman numeral symbol", ErrInvalidCharacterSet, r)
	}

	// Whitespace other than the space survives tokenization ("I\tV") and is
	// rejected here.
	for _, token := range tokenizer.Fields(raw) {
		for _, r := range token {
			if !numeral.IsSymbol(r) {
				return fmt.Errorf("%w: token %q", ErrInvalidCharacterSet, token)
			}
		}
	}
	return nil
}

func validateText(raw string) error {
	letters := 0
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
		case numeral.LetterToPosition(r) > 0:
			letters++
		default:
			return fmt.Errorf("%w: %q is not a letter A-Z", ErrInvalidCharacterSet, r)
		}
	}
	if letters == 0 {
		return ErrEmpty
	}
	return nil
}
