// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	m.title = ""
	m.message = ""
	m.context = nil
	m.active = false
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "y", "Y":
		return m, m.finish(true)
	case "esc", "n", "N":
		return m, m.finish(false)
	}
	return m, nil
}

func (m *Model) finish(confirmed bool) tea.Cmd {
	m.active = false
	return action.Cmd(source, Result{Confirmed: confirmed, Context: m.context})
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	title := s.Title.Foreground(styles.T().Primary).Render(render.Sanitize(m.title))
	message := s.Base.Render(render.Sanitize(m.message))
	hint := s.Subtle.Render("Enter/Y: confirm, Esc/N: cancel")
	return title + "\n\n" + message + "\n\n" + hint
}
