// Package headerbar renders the masthead and the section navigation bar.
package headerbar

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Height is the fixed height of the header bar (masthead + section bar).
const Height = 2

// maxLabelWidth caps a single section label in the nav bar.
const maxLabelWidth = 24

const separator = " │ "

// Props is what the header needs to render one frame.
type Props struct {
	Title    string
	Sections []string
	Active   int  // -1 when no section is highlighted
	Scrolled bool // compact style once the reader scrolled past the threshold
	Status   string
	Width    int
}

// Model holds the zone prefix used to mark section labels.
type Model struct {
	id string
}

// New creates a header bar with its own zone prefix.
func New() Model {
	return Model{id: zone.NewPrefix()}
}

func (m Model) zoneID(i int) string {
	return m.id + "section" + strconv.Itoa(i)
}

// Render returns the two header lines for p.
func (m Model) Render(p Props) string {
	if p.Width < 20 {
		return "\n"
	}
	return m.masthead(p) + "\n" + m.nav(p)
}

func (m Model) masthead(p Props) string {
	t := styles.T()
	title := render.Sanitize(p.Title)

	if p.Scrolled {
		st := t.S().Compact
		left := " " + render.Truncate(title, p.Width/2)
		right := p.Status + " "
		return st.Bold(true).Render(render.Row(left, right, p.Width))
	}

	title = render.Truncate(title, p.Width-4)
	return render.Center(styles.Masthead(title), p.Width)
}

func (m Model) nav(p Props) string {
	if len(p.Sections) == 0 {
		return ""
	}
	st := styles.T().S()

	labels := make([]string, len(p.Sections))
	widths := make([]int, len(p.Sections))
	for i, s := range p.Sections {
		labels[i] = render.Truncate(render.Sanitize(s), maxLabelWidth)
		widths[i] = lipgloss.Width(labels[i])
	}

	lo, hi := visibleRange(widths, max(p.Active, 0), p.Width-4, lipgloss.Width(separator))

	parts := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		style := st.Muted
		if i == p.Active {
			style = st.Accent
		}
		parts = append(parts, zone.Mark(m.zoneID(i), style.Render(labels[i])))
	}

	line := strings.Join(parts, st.Subtle.Render(separator))
	if lo > 0 {
		line = st.Subtle.Render("… ") + line
	}
	if hi < len(labels) {
		line += st.Subtle.Render(" …")
	}
	return render.Center(line, p.Width)
}

// visibleRange returns the half-open window of labels that fits in width,
// grown outward from active.
func visibleRange(widths []int, active, width, sepWidth int) (lo, hi int) {
	if active >= len(widths) {
		active = len(widths) - 1
	}
	lo, hi = active, active+1
	used := widths[active]
	for {
		grew := false
		if hi < len(widths) && used+sepWidth+widths[hi] <= width {
			used += sepWidth + widths[hi]
			hi++
			grew = true
		}
		if lo > 0 && used+sepWidth+widths[lo-1] <= width {
			used += sepWidth + widths[lo-1]
			lo--
			grew = true
		}
		if !grew {
			return lo, hi
		}
	}
}

// SectionAt returns the index of the section label under the mouse, or -1.
// It relies on the zones of the last scanned frame.
func (m Model) SectionAt(msg tea.MouseMsg, count int) int {
	for i := range count {
		if zone.Get(m.zoneID(i)).InBounds(msg) {
			return i
		}
	}
	return -1
}
