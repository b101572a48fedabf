// Package icons holds the glyph sets used for page dots, prev/next controls
// and media cards.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleUnicode Style = "unicode"
	StyleASCII   Style = "ascii"
	StyleNerd    Style = "nerd"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	DotActive   string
	DotInactive string
	Prev        string
	Next        string
	PDF         string
	Audio       string
}

var (
	unicodeIcons = Icons{
		DotActive:   "●",
		DotInactive: "○",
		Prev:        "‹",
		Next:        "›",
		PDF:         "📄 ",
		Audio:       "🎵 ",
	}

	asciiIcons = Icons{
		DotActive:   "*",
		DotInactive: ".",
		Prev:        "<",
		Next:        ">",
		PDF:         "[pdf] ",
		Audio:       "[audio] ",
	}

	nerdIcons = Icons{
		DotActive:   "\uf111",  // nf-fa-circle
		DotInactive: "\uf10c",  // nf-fa-circle_o
		Prev:        "\uf104",  // nf-fa-angle_left
		Next:        "\uf105",  // nf-fa-angle_right
		PDF:         "\uf1c1 ", // nf-fa-file_pdf_o
		Audio:       "\uf001 ", // nf-fa-music
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleASCII:
		current = asciiIcons
	case StyleNerd:
		current = nerdIcons
	default:
		current = unicodeIcons
	}
}

// Dot returns the indicator glyph for an active or inactive page.
func Dot(active bool) string {
	if active {
		return current.DotActive
	}
	return current.DotInactive
}

// Prev returns the previous-page control glyph.
func Prev() string {
	return current.Prev
}

// Next returns the next-page control glyph.
func Next() string {
	return current.Next
}

// FormatPDF formats a PDF card label with the appropriate icon.
func FormatPDF(name string) string {
	return current.PDF + name
}

// FormatAudio formats an audio card label with the appropriate icon.
func FormatAudio(name string) string {
	return current.Audio + name
}
