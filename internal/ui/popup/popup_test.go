package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestOverlay_CentersBoxOverBase(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"

	got := strings.Split(Overlay(base, "XY", 10, 3), "\n")
	if got[0] != "aaaaaaaaaa" {
		t.Errorf("line 0 = %q, want untouched", got[0])
	}
	if plain := ansi.Strip(got[1]); plain != "bbbbXYbbbb" {
		t.Errorf("line 1 = %q, want %q", plain, "bbbbXYbbbb")
	}
	if got[2] != "cccccccccc" {
		t.Errorf("line 2 = %q, want untouched", got[2])
	}
}

func TestOverlay_PadsShortBase(t *testing.T) {
	got := Overlay("ab", "Z", 6, 1)
	if plain := ansi.Strip(got); plain != "abZ   " {
		t.Errorf("Overlay = %q, want %q", plain, "abZ   ")
	}
}

func TestOverlay_ExtendsMissingRows(t *testing.T) {
	got := strings.Split(Overlay("", "Z", 3, 3), "\n")
	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3", len(got))
	}
	if got[1] != " Z " {
		t.Errorf("middle row = %q, want %q", got[1], " Z ")
	}
}

func TestOverlay_WideRuneAtEdge(t *testing.T) {
	// 世 covers cells 2-3 and straddles the right edge of the box
	got := Overlay("ab世c", "XX", 5, 1)
	if w := ansi.StringWidth(got); w != 5 {
		t.Errorf("width = %d, want 5 (%q)", w, got)
	}
}

func TestBox_FitsScreen(t *testing.T) {
	out := Box(strings.Repeat("x", 200), 60, 20, WidthPrompt)
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 56 {
			t.Errorf("line width %d exceeds screen width minus margin", w)
		}
	}
	if !strings.Contains(out, "╭") {
		t.Error("expected a rounded border")
	}
}

func TestBox_CutsTallContent(t *testing.T) {
	content := strings.TrimSuffix(strings.Repeat("line\n", 30), "\n")
	lines := strings.Split(Box(content, 60, 20, WidthAuto), "\n")

	if len(lines) != 16 {
		t.Errorf("height = %d, want 16", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "╰") {
		t.Errorf("last line = %q, want bottom border", lines[len(lines)-1])
	}
}

func TestBox_AutoWidthFitsContent(t *testing.T) {
	out := Box("hello", 80, 24, WidthAuto)
	if w := ansi.StringWidth(strings.Split(out, "\n")[0]); w != 11 {
		t.Errorf("width = %d, want 11", w)
	}
}
