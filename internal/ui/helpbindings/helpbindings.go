// Package helpbindings provides a scrollable popup listing the key bindings
// of the active contexts.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

var contextLabels = map[string]string{
	"global": "Global",
	"flip":   "Page Flip",
	"scroll": "Scroll",
	"media":  "Media",
}

// chrome is the popup height taken by the title, footer and border.
const chrome = 10

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{}
}

// SetContexts lists the bindings of contexts in priority order. A key taken
// by an earlier context is left out of later ones, so the listing matches
// what the key actually does.
func (m *Model) SetContexts(contexts []string) {
	resolver := keymap.ForContexts(contexts...)
	st := styles.T().S()

	type row struct{ keys, desc string }
	var sections [][]row
	var labels []string
	keyWidth := 0
	for _, ctx := range contexts {
		var rows []row
		for _, b := range keymap.ByContext(ctx) {
			var live []string
			for _, k := range b.Keys {
				if resolver.Resolve(k) == b.Action {
					live = append(live, displayKey(k))
				}
			}
			if len(live) == 0 {
				continue
			}
			r := row{strings.Join(live, ", "), b.Description}
			keyWidth = max(keyWidth, lipgloss.Width(r.keys))
			rows = append(rows, r)
		}
		if len(rows) > 0 {
			sections = append(sections, rows)
			labels = append(labels, label(ctx))
		}
	}

	m.lines = m.lines[:0]
	for i, rows := range sections {
		if i > 0 {
			m.lines = append(m.lines, "")
		}
		m.lines = append(m.lines,
			st.Heading.Render(labels[i]),
			st.Subtle.Render(strings.Repeat("─", keyWidth+16)))
		for _, r := range rows {
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(r.keys))
			m.lines = append(m.lines, st.Accent.Render(r.keys+pad)+"  "+st.Base.Render(r.desc))
		}
	}
	m.scrollOffset = 0
}

func label(ctx string) string {
	if l, ok := contextLabels[ctx]; ok {
		return l
	}
	return ctx
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, action.Cmd(source, Close{})
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	st := styles.T().S()

	// pad to the widest line so the box keeps its width while scrolling
	width := 0
	for _, l := range m.lines {
		width = max(width, lipgloss.Width(l))
	}
	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	visible := make([]string, 0, end-m.scrollOffset)
	for _, l := range m.lines[m.scrollOffset:end] {
		visible = append(visible, l+strings.Repeat(" ", width-lipgloss.Width(l)))
	}

	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}
	return st.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		st.Subtle.Render(footer)
}

func (m *Model) visibleHeight() int {
	return max(m.Height()-chrome, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
