// Package tokenizer splits raw input into words and numeral tokens.
//
// Words are separated by the space character only; numeral tokens inside a
// word are separated by commas. Whitespace other than the space is left
// inside words so the caller can decide what to do with it.
package tokenizer

import (
	"regexp"
	"strings"
)

// commaSpaceRe matches a comma followed by any run of whitespace.
var commaSpaceRe = regexp.MustCompile(`,\s+`)

// NormalizeSeparators collapses "comma + following whitespace" into a bare
// comma so that "I, V" stays one word instead of splitting at the space.
func NormalizeSeparators(s string) string {
	return commaSpaceRe.ReplaceAllString(s, ",")
}

// Words splits s on the space character. Consecutive spaces produce empty
// words; the result always has at least one element.
func Words(s string) []string {
	return strings.Split(s, " ")
}

// Tokens splits word on commas, trims and uppercases each piece and drops
// the empty ones.
func Tokens(word string) []string {
	parts := strings.Split(word, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// Fields splits s on spaces and commas and returns the trimmed, non-empty
// pieces. Validation uses it to look at every numeral token regardless of
// which separator produced it.
func Fields(s string) []string {
	var out []string
	for _, word := range Words(s) {
		if strings.TrimSpace(word) == "" {
			continue
		}
		out = append(out, Tokens(word)...)
	}
	return out
}
