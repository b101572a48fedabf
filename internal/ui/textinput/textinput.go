// Package textinput provides a single-line prompt popup.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	charLimit     = 1024
	minInputWidth = 20
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model is a prompt popup wrapping a bubbles text input.
type Model struct {
	ui.Base
	title   string
	hint    string
	input   textinput.Model
	context any // passed through to Result action
}

// New creates a new text input model.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = charLimit
	return Model{input: ti}
}

// Start prepares the prompt with a title, placeholder and optional initial
// text, and focuses it.
func (m *Model) Start(title, placeholder, initialText string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input.Placeholder = placeholder
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.Focus()
	m.SetSize(width, height)
}

// SetHint sets the line shown under the input, replacing the default key hint.
func (m *Model) SetHint(hint string) {
	m.hint = hint
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(min(width-16, 60), minInputWidth)
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.hint = ""
	m.context = nil
	m.input.Reset()
	m.input.Blur()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m, action.Cmd(source, Result{Canceled: true, Context: m.context})
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			return m, action.Cmd(source, Result{Text: text, Context: m.context})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	hint := m.hint
	if hint == "" {
		hint = "Enter: confirm, Esc: cancel"
	}

	return titleStyle().Render(m.title) + "\n\n" +
		m.input.View() + "\n\n" +
		hintStyle().Render(hint)
}
