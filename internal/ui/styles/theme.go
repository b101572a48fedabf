package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the reader's palette plus the styles derived from it.
type Theme struct {
	Primary   lipgloss.Color // active page, dot and links
	Secondary lipgloss.Color // masthead end, headings

	FgBase   lipgloss.Color // body text
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color // disabled controls, unrevealed sections

	BgBase   lipgloss.Color
	BgCursor lipgloss.Color // compact header

	Border      lipgloss.Color
	BorderFocus lipgloss.Color // cards on the page being read

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles Styles
}

// Styles are the text styles used across the reader.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Accent  lipgloss.Style // current page, highlighted section
	Heading lipgloss.Style // headings inside a page
	Code    lipgloss.Style
	Link    lipgloss.Style
	Quote   lipgloss.Style
	Compact lipgloss.Style // header once the reader has scrolled
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var current = newTheme(Theme{
	Primary:   "#a78bfa",
	Secondary: "#f1a208",

	FgBase:   "#c0c0c0",
	FgMuted:  "#808080",
	FgSubtle: "#585858",

	BgBase:   "#1a1a1a",
	BgCursor: "#303030",

	Border:      "#585858",
	BorderFocus: "#a78bfa",

	Success: "#42b883",
	Error:   "#ff5555",
	Warning: "#f1a208",
})

// T returns the active theme.
func T() *Theme {
	return current
}

// S returns the styles derived from the theme's colors.
func (t *Theme) S() *Styles {
	return &t.styles
}

func newTheme(t Theme) *Theme {
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	t.styles = Styles{
		Base:    fg(t.FgBase),
		Muted:   fg(t.FgMuted),
		Subtle:  fg(t.FgSubtle),
		Title:   fg(t.FgBase).Bold(true),
		Accent:  fg(t.Primary).Bold(true),
		Heading: fg(t.Secondary).Bold(true),
		Code:    fg(t.Warning),
		Link:    fg(t.Primary).Underline(true),
		Quote:   fg(t.FgMuted).Italic(true),
		Compact: fg(t.FgBase).Background(t.BgCursor),
		Success: fg(t.Success),
		Error:   fg(t.Error),
		Warning: fg(t.Warning),
	}
	return &t
}
