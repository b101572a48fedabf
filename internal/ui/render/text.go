// Package render turns page content into terminal lines.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Sanitize makes a title or file name safe to draw on one line: invalid
// UTF-8 and control characters are dropped, tabs and non-breaking spaces
// become plain spaces.
func Sanitize(s string) string {
	if isClean(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == ' ':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

func isClean(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError || r < 0x20 || (r >= 0x7f && r <= 0xa0) {
			return false
		}
	}
	return true
}

// Truncate sanitizes s and shortens it to maxWidth cells, ending with an
// ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, Ellipsis)
}

// Row puts left and right at the two ends of a width-cell line. Styled
// input is allowed; left is cut when both do not fit.
func Row(left, right string, width int) string {
	rw := lipgloss.Width(right)
	if lipgloss.Width(left)+rw+1 > width {
		left = ansi.Truncate(left, max(width-rw-1, 0), Ellipsis)
	}
	gap := max(width-lipgloss.Width(left)-rw, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator returns a horizontal rule width cells long.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Center pads s on both sides to width cells. Wider input is returned as is.
func Center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
