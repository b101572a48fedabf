package styles

import "github.com/charmbracelet/lipgloss"

// CardStyle returns the border style for media cards. Cards on the page
// being read use the focus color.
func CardStyle(active bool) lipgloss.Style {
	t := T()
	border := t.Border
	if active {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
