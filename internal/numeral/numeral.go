// Package numeral converts between letters, their alphabet positions and
// Roman numerals.
//
// The mappings are tolerant: out-of-range inputs never fail, they report a
// miss through the boolean result and the caller decides how to render it.
// Sentinel is the conventional rendering of a miss.
package numeral

import "strings"

const (
	// Sentinel renders a value that has no letter or numeral.
	Sentinel = '?'

	// MaxLetter is the position of 'Z'.
	MaxLetter = 26

	// MaxNumeral is the largest value ValueToRoman composes.
	MaxNumeral = 39
)

var symbolValues = map[rune]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50,
	'C': 100, 'D': 500, 'M': 1000,
}

// composeTable is ordered from the largest value down; ValueToRoman walks it greedily.
var composeTable = []struct {
	value   int
	numeral string
}{
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// IsSymbol reports whether r is one of I, V, X, L, C, D, M in either case.
func IsSymbol(r rune) bool {
	_, ok := symbolValues[toUpper(r)]
	return ok
}

// LetterToPosition maps 'A'..'Z' (any case) to 1..26. Every other rune,
// including the space, maps to 0.
func LetterToPosition(r rune) int {
	r = toUpper(r)
	if r >= 'A' && r <= 'Z' {
		return int(r-'A') + 1
	}
	return 0
}

// PositionToLetter maps 1..26 to 'A'..'Z'. Out of range values return
// Sentinel and false.
func PositionToLetter(n int) (rune, bool) {
	if n < 1 || n > MaxLetter {
		return Sentinel, false
	}
	return rune('A' + n - 1), true
}

// LetterOrSentinel is PositionToLetter without the miss flag.
func LetterOrSentinel(n int) rune {
	r, _ := PositionToLetter(n)
	return r
}

// RomanToValue decodes s by scanning right to left: a symbol smaller than
// the one to its right is subtracted, otherwise added. Unknown runes count
// as zero, so non-canonical input such as "IIII" still yields a value.
func RomanToValue(s string) int {
	runes := []rune(s)
	total, prev := 0, 0
	for i := len(runes) - 1; i >= 0; i-- {
		v := symbolValues[toUpper(runes[i])]
		if v < prev {
			total -= v
		} else {
			total += v
		}
		prev = v
	}
	return total
}

// ValueToRoman composes n from X, IX, V, IV and I. Values outside
// 1..MaxNumeral return the sentinel string and false.
func ValueToRoman(n int) (string, bool) {
	if n < 1 || n > MaxNumeral {
		return string(Sentinel), false
	}

	var b strings.Builder
	remaining := n
	for _, entry := range composeTable {
		for remaining >= entry.value {
			b.WriteString(entry.numeral)
			remaining -= entry.value
		}
	}
	return b.String(), true
}

// RomanOrSentinel is ValueToRoman without the miss flag.
func RomanOrSentinel(n int) string {
	s, _ := ValueToRoman(n)
	return s
}

// Pair is one row of the letter table.
type Pair struct {
	Letter   rune
	Position int
	Numeral  string
}

// Table lists every letter with its position and numeral.
func Table() []Pair {
	pairs := make([]Pair, 0, MaxLetter)
	for n := 1; n <= MaxLetter; n++ {
		pairs = append(pairs, Pair{
			Letter:   LetterOrSentinel(n),
			Position: n,
			Numeral:  RomanOrSentinel(n),
		})
	}
	return pairs
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
