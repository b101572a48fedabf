// Package popup draws modal boxes over the reader.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/folio/internal/ui/styles"
)

// Outer width caps passed to Box.
const (
	WidthAuto   = 0  // fit the content
	WidthPrompt = 72 // attach prompt
	WidthDialog = 56 // confirmations
)

const (
	frameX = 6 // border + horizontal padding
	frameY = 4 // border + vertical padding
	margin = 4 // cells left free around the box
)

// Box frames content in a rounded border sized to fit it within the screen.
// Content taller than the screen allows is cut at the bottom.
func Box(content string, screenW, screenH, maxWidth int) string {
	w := lipgloss.Width(content) + frameX
	if maxWidth > 0 {
		w = min(w, maxWidth)
	}
	w = max(min(w, screenW-margin), frameX+1)

	h := max(min(lipgloss.Height(content)+frameY, screenH-margin), frameY+1)
	if lines := strings.Split(content, "\n"); len(lines) > h-frameY {
		content = strings.Join(lines[:h-frameY], "\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(1, 2).
		Width(w - 2).
		Render(content)
}

// Overlay draws box centered over base, a view width cells wide and
// height lines tall.
func Overlay(base, box string, width, height int) string {
	rows := strings.Split(base, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}

	lines := strings.Split(box, "\n")
	boxW := lipgloss.Width(box)
	top := max((height-len(lines))/2, 0)
	left := max((width-boxW)/2, 0)

	for i, line := range lines {
		r := top + i
		if r >= len(rows) {
			break
		}
		rows[r] = splice(rows[r], line, left, boxW, width)
	}
	return strings.Join(rows, "\n")
}

// splice replaces cells [left, left+w) of row with s, keeping the row
// width cells wide.
func splice(row, s string, left, w, width int) string {
	out := pad(ansi.Cut(row, 0, left), left) + pad(s, w)
	end := left + w
	if end >= width {
		return out
	}

	want := width - end
	suffix := ansi.Cut(row, end, width)
	if sw := ansi.StringWidth(suffix); sw > want {
		// a wide rune straddles the box edge
		suffix = " " + ansi.Cut(suffix, sw-want+1, sw)
	}
	return out + pad(suffix, want)
}

func pad(s string, w int) string {
	if sw := ansi.StringWidth(s); sw < w {
		return s + strings.Repeat(" ", w-sw)
	}
	return s
}
