package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor stands in for ANSI palette colors, which cannot be blended.
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Masthead renders an issue title in bold, shaded from the primary to the
// secondary theme color.
func Masthead(title string) string {
	t := T()
	return Gradient(title, t.Primary, t.Secondary)
}

// Gradient renders text in bold with a horizontal color gradient. Each
// grapheme cluster gets one color; whitespace is left unstyled.
func Gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	colors := Blend(from, to, len(clusters))
	var b strings.Builder
	for i, c := range clusters {
		if strings.TrimSpace(c) == "" {
			b.WriteString(c)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colors[i]).Render(c))
	}
	return b.String()
}

// Blend returns n colors from from to to, interpolated in HCL space.
func Blend(from, to lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	c1, c2 := parseHex(from), parseHex(to)
	out := make([]lipgloss.Color, n)
	out[0] = lipgloss.Color(c1.Hex())
	if n == 1 {
		return out
	}
	// HCL round trips drift by a unit, so the endpoints are kept exact.
	for i := 1; i < n-1; i++ {
		out[i] = lipgloss.Color(c1.BlendHcl(c2, float64(i)/float64(n-1)).Clamped().Hex())
	}
	out[n-1] = lipgloss.Color(c2.Hex())
	return out
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
