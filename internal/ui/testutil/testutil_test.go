package testutil

import (
	"reflect"
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello", "hello"},
		{"sgr sequences", "\x1b[1;35mbold\x1b[0m", "bold"},
		{"zone markers", "\x1b[1000z●\x1b[1001z", "●"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	if got := NormalizeWhitespace("  a \n\t b  "); got != "a b" {
		t.Errorf("NormalizeWhitespace = %q, want %q", got, "a b")
	}
}

func TestFindLine(t *testing.T) {
	out := "Spring Issue\n‹ prev  ● ○ ○  next ›\n2 / 3"
	if got := FindLine(out, "next"); got != "‹ prev  ● ○ ○  next ›" {
		t.Errorf("FindLine = %q", got)
	}
	if FindLine(out, "missing") != "" {
		t.Error("FindLine should return empty for a missing substring")
	}
	if !ContainsLine(out, "2 / 3") {
		t.Error("ContainsLine should find the counter")
	}
}

func TestCountLines(t *testing.T) {
	if got := CountLines("a\n\n  \nb\n"); got != 2 {
		t.Errorf("CountLines = %d, want 2", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("\x1b[1ma\x1b[0m\nb\n\n  \n")
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("SplitLines = %q", got)
	}
}
