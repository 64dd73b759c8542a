package detector

import (
	"testing"

	"github.com/valpere/romawi/internal"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   internal.Mode
		wantOK bool
	}{
		{"comma list", "IX,IV", internal.RomanToText, true},
		{"spaced numerals", "I V X", internal.RomanToText, true},
		{"plain word", "hello", internal.TextToRoman, true},
		{"sentence", "the quick brown fox", internal.TextToRoman, true},
		{"ambiguous small numeral", "VI", internal.RomanToText, true},
		{"ambiguous large numeral", "MIX", internal.TextToRoman, true},
		{"ambiguous word", "DC", internal.TextToRoman, true},
		{"digits", "123", internal.RomanToText, false},
		{"empty", "", internal.RomanToText, false},
	}

	d := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Detect(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Detect(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectOr(t *testing.T) {
	d := New()

	if got := d.DetectOr("123", internal.TextToRoman); got != internal.TextToRoman {
		t.Errorf("expected fallback, got %s", got)
	}
	if got := d.DetectOr("hello", internal.RomanToText); got != internal.TextToRoman {
		t.Errorf("expected detected mode, got %s", got)
	}
}
