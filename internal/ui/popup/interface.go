package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn with Box and Overlay.
// Results leave a popup as action.Msg commands, never as return values.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content only. Box adds the frame.
	View() string
	// SetSize receives the whole screen, the popup picks its own width.
	SetSize(width, height int)
}
