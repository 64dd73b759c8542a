package numeral

import "testing"

func TestLetterToPosition(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want int
	}{
		{"upper A", 'A', 1},
		{"upper Z", 'Z', 26},
		{"lower m", 'm', 13},
		{"space", ' ', 0},
		{"digit", '7', 0},
		{"punctuation", '!', 0},
		{"non-ascii letter", 'é', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LetterToPosition(tt.in); got != tt.want {
				t.Errorf("LetterToPosition(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPositionToLetter_Boundaries(t *testing.T) {
	for _, n := range []int{0, 27, -1, 100} {
		r, ok := PositionToLetter(n)
		if ok {
			t.Errorf("PositionToLetter(%d) reported ok", n)
		}
		if r != Sentinel {
			t.Errorf("PositionToLetter(%d) = %q, want sentinel", n, r)
		}
	}

	if r, ok := PositionToLetter(1); !ok || r != 'A' {
		t.Errorf("PositionToLetter(1) = %q, %v", r, ok)
	}
	if r, ok := PositionToLetter(26); !ok || r != 'Z' {
		t.Errorf("PositionToLetter(26) = %q, %v", r, ok)
	}
}

func TestRomanToValue(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"I", 1},
		{"IV", 4},
		{"iv", 4},
		{"IX", 9},
		{"XIV", 14},
		{"XXVI", 26},
		{"XXXIX", 39},
		{"IIII", 4},
		{"VX", 5},
		{"MCMXC", 1990},
		{"", 0},
		{"A", 0},
		{"XA", 10},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := RomanToValue(tt.in); got != tt.want {
				t.Errorf("RomanToValue(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestValueToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{19, "XIX"},
		{26, "XXVI"},
		{39, "XXXIX"},
	}

	for _, tt := range tests {
		got, ok := ValueToRoman(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ValueToRoman(%d) = %q, %v; want %q", tt.in, got, ok, tt.want)
		}
	}
}

func TestValueToRoman_OutOfRange(t *testing.T) {
	for _, n := range []int{0, 40, -5} {
		got, ok := ValueToRoman(n)
		if ok {
			t.Errorf("ValueToRoman(%d) reported ok", n)
		}
		if got != string(Sentinel) {
			t.Errorf("ValueToRoman(%d) = %q, want sentinel", n, got)
		}
	}
}

func TestComposeThenDecode(t *testing.T) {
	for n := 1; n <= MaxNumeral; n++ {
		s, ok := ValueToRoman(n)
		if !ok {
			t.Fatalf("ValueToRoman(%d) missed", n)
		}
		if got := RomanToValue(s); got != n {
			t.Errorf("RomanToValue(ValueToRoman(%d)=%q) = %d", n, s, got)
		}
	}
}

func TestLetterRoundTrip(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		numeral := RomanOrSentinel(LetterToPosition(r))
		if got := LetterOrSentinel(RomanToValue(numeral)); got != r {
			t.Errorf("round trip of %q via %q = %q", r, numeral, got)
		}
	}
}

func TestIsSymbol(t *testing.T) {
	for _, r := range "IVXLCDMivxlcdm" {
		if !IsSymbol(r) {
			t.Errorf("IsSymbol(%q) = false", r)
		}
	}
	for _, r := range "ABZ ,1" {
		if IsSymbol(r) {
			t.Errorf("IsSymbol(%q) = true", r)
		}
	}
}

func TestTable(t *testing.T) {
	pairs := Table()
	if len(pairs) != MaxLetter {
		t.Fatalf("expected %d pairs, got %d", MaxLetter, len(pairs))
	}
	if pairs[0].Letter != 'A' || pairs[0].Numeral != "I" {
		t.Errorf("first pair = %+v", pairs[0])
	}
	last := pairs[len(pairs)-1]
	if last.Letter != 'Z' || last.Position != 26 || last.Numeral != "XXVI" {
		t.Errorf("last pair = %+v", last)
	}
}
