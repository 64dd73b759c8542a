package translator

import (
	"errors"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/validator"
)

var (
	ErrEmpty               = validator.ErrEmpty
	ErrInvalidCharacterSet = validator.ErrInvalidCharacterSet
)

// Kind classifies a Result.
type Kind int

const (
	KindOK Kind = iota
	KindEmpty
	KindInvalidCharacterSet
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindEmpty:
		return "empty"
	default:
		return "invalid_character_set"
	}
}

// Result is the outcome of one translation. Output is meaningful only when
// Err is nil.
type Result struct {
	ServiceName string        `json:"service_name"`
	Mode        internal.Mode `json:"mode"`
	Input       string        `json:"input"`
	Output      string        `json:"output,omitempty"`
	Err         error         `json:"-"`
}

func (r *Result) OK() bool {
	return r != nil && r.Err == nil
}

func (r *Result) Kind() Kind {
	switch {
	case r.Err == nil:
		return KindOK
	case errors.Is(r.Err, ErrEmpty):
		return KindEmpty
	default:
		return KindInvalidCharacterSet
	}
}

// MessageID names the localized diagnostic for a failed result. The ID is
// mode specific so each direction explains its own alphabet.
func (r *Result) MessageID() string {
	switch {
	case r.Err == nil:
		return ""
	case errors.Is(r.Err, ErrEmpty) && r.Mode == internal.TextToRoman:
		return "ErrorEmptyTextToRoman"
	case errors.Is(r.Err, ErrEmpty):
		return "ErrorEmptyRomanToText"
	case r.Mode == internal.TextToRoman:
		return "ErrorTextToRoman"
	default:
		return "ErrorRomanToText"
	}
}

// Message is the English diagnostic for a failed result, used when no
// localizer is at hand.
func (r *Result) Message() string {
	switch r.MessageID() {
	case "":
		return ""
	case "ErrorEmptyTextToRoman":
		return "ERROR: Enter letters A-Z to translate"
	case "ErrorEmptyRomanToText":
		return "ERROR: Enter roman numerals to translate"
	case "ErrorTextToRoman":
		return "ERROR: Input must contain letters A-Z only"
	default:
		return "ERROR: Input must be roman numerals (I, V, X, L, C, D, M)"
	}
}

// Service translates in one fixed direction.
type Service interface {
	Name() string
	Mode() internal.Mode
	Translate(req internal.TranslationRequest) *Result
}
