package internal

import (
	"fmt"
	"strings"
	"time"
)

// Mode is the active translation direction. The name refers to the input side.
type Mode int

const (
	RomanToText Mode = iota
	TextToRoman
)

func (m Mode) String() string {
	switch m {
	case RomanToText:
		return "roman"
	case TextToRoman:
		return "text"
	default:
		return "unknown"
	}
}

// Swap returns the opposite direction.
func (m Mode) Swap() Mode {
	if m == RomanToText {
		return TextToRoman
	}
	return RomanToText
}

// ParseMode accepts "roman", "text" and the long forms "roman-to-text",
// "text-to-roman", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "roman", "roman-to-text", "romawi":
		return RomanToText, nil
	case "text", "text-to-roman", "huruf":
		return TextToRoman, nil
	default:
		return RomanToText, fmt.Errorf("unknown mode %q (want roman or text)", s)
	}
}

type TranslationRequest struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Mode      Mode      `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
}
