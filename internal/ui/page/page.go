// Package page lays out one issue page as terminal lines: title, Markdown
// body and a card per attached media file.
package page

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/icons"
	"github.com/llehouerou/folio/internal/media"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Content is the renderable part of a page.
type Content struct {
	Title  string
	Body   string
	Embeds []media.Embed
}

// Render returns the page laid out at width. Cards on the active page are
// highlighted.
func Render(c Content, width int, active bool, now time.Time) []string {
	width = max(width, 1)
	st := styles.T().S()

	var lines []string
	if c.Title != "" {
		title := render.Wrap(render.Sanitize(c.Title), width)
		for _, l := range title {
			lines = append(lines, st.Heading.Render(l))
		}
		rule := 0
		for _, l := range title {
			rule = max(rule, lipgloss.Width(l))
		}
		lines = append(lines, st.Subtle.Render(render.Separator(rule)), "")
	}

	lines = append(lines, render.Markdown(c.Body, width)...)

	for _, e := range c.Embeds {
		lines = append(lines, "")
		lines = append(lines, strings.Split(Card(e, width, active, now), "\n")...)
	}

	// keep at least one line so empty pages still occupy space
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// Card renders one embed as a bordered box no wider than width.
func Card(e media.Embed, width int, active bool, now time.Time) string {
	st := styles.T().S()
	box := styles.CardStyle(active)
	inner := max(width-box.GetHorizontalFrameSize(), 1)

	var label string
	switch e.Kind {
	case media.KindAudio:
		label = icons.FormatAudio(e.Label())
	default:
		label = icons.FormatPDF(e.Label())
	}

	var meta []string
	if e.Album != "" {
		meta = append(meta, e.Album)
	}
	meta = append(meta, string(e.Kind), e.HumanSize())
	if age := e.Age(now); age != "" {
		meta = append(meta, "added "+age)
	}

	rows := []string{
		st.Title.Render(render.Truncate(label, inner)),
		st.Muted.Render(render.Truncate(strings.Join(meta, " · "), inner)),
		st.Link.Render(render.Truncate(e.URL, inner)),
	}
	return box.Width(inner + box.GetHorizontalPadding()).Render(strings.Join(rows, "\n"))
}
