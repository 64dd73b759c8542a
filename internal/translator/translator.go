// Package translator turns validated input into letters or numerals.
//
// Every Translate call validates the whole input first and performs no
// conversion when validation fails. Values without a letter or numeral are
// rendered with numeral.Sentinel instead of failing.
package translator

import (
	"fmt"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/validator"
)

var services = map[internal.Mode]Service{
	internal.RomanToText: NewRomanToText(),
	internal.TextToRoman: NewTextToRoman(),
}

// ForMode returns the service translating from mode's input side.
func ForMode(mode internal.Mode) (Service, error) {
	svc, ok := services[mode]
	if !ok {
		return nil, fmt.Errorf("no translator for mode %s", mode)
	}
	return svc, nil
}

// Translate translates raw under mode.
func Translate(raw string, mode internal.Mode) *Result {
	svc, err := ForMode(mode)
	if err != nil {
		return &Result{Mode: mode, Input: raw, Err: fmt.Errorf("%w: %v", ErrInvalidCharacterSet, err)}
	}
	return svc.Translate(internal.TranslationRequest{Text: raw, Mode: mode})
}

// precheck validates req for svc and returns a failed Result, or nil when
// conversion may proceed.
func precheck(svc Service, req internal.TranslationRequest) *Result {
	if err := validator.Validate(req.Text, svc.Mode()); err != nil {
		return &Result{
			ServiceName: svc.Name(),
			Mode:        svc.Mode(),
			Input:       req.Text,
			Err:         err,
		}
	}
	return nil
}
