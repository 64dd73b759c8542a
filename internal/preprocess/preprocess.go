// Package preprocess cleans text read from files or stdin before it reaches
// the translator.
//
// Editors and terminals add artifacts the validator would otherwise reject:
//  1. A UTF-8 byte order mark
//  2. Windows line endings
//  3. Decomposed Unicode (a letter followed by a combining mark)
package preprocess

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const bom = "\uFEFF"

// Clean removes the byte order mark, converts CRLF and lone CR to LF and
// applies NFC normalization.
func Clean(text string) string {
	text = strings.TrimPrefix(text, bom)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return norm.NFC.String(text)
}

// Lines cleans text and splits it into lines. A single trailing newline does
// not produce an extra empty line.
func Lines(text string) []string {
	text = Clean(text)
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
