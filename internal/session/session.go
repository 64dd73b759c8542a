// Package session holds the interactive translation state: the active mode,
// the current input and the most recent result.
//
// A Session is an explicit context object owned by a single caller; it is
// not safe for concurrent use.
package session

import (
	"unicode/utf8"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/translator"
)

type Session struct {
	mode  internal.Mode
	input string
	last  *translator.Result
}

// New starts a session in mode with empty input.
func New(mode internal.Mode) *Session {
	s := &Session{mode: mode}
	s.last = translator.Translate("", mode)
	return s
}

func (s *Session) Mode() internal.Mode { return s.mode }

func (s *Session) Input() string { return s.input }

// Last returns the result of the most recent translation.
func (s *Session) Last() *translator.Result { return s.last }

// CharCount is the number of runes in the current input.
func (s *Session) CharCount() int { return utf8.RuneCountInString(s.input) }

// SetInput replaces the input and translates it under the current mode.
func (s *Session) SetInput(raw string) *translator.Result {
	s.input = raw
	s.last = translator.Translate(raw, s.mode)
	return s.last
}

// Swap flips the mode. A successful previous output becomes the new input
// verbatim; after a failure the input is cleared. The new input is then
// translated under the new mode.
func (s *Session) Swap() *translator.Result {
	next := ""
	if s.last.OK() {
		next = s.last.Output
	}
	s.mode = s.mode.Swap()
	return s.SetInput(next)
}

// CopyText returns the current output and whether it is worth copying.
// Placeholder and error results are not.
func (s *Session) CopyText() (string, bool) {
	if !s.last.OK() || s.last.Output == "" {
		return "", false
	}
	return s.last.Output, true
}
