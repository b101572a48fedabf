package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/ui/popup"
)

// PopupHarness drives a popup the way the app does and records the
// commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// View returns the popup's rendered content with escape sequences removed.
func (h *PopupHarness) View() string {
	return StripANSI(h.popup.View())
}

// SendMsg sends any message to the popup and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Type sends each rune of s as a separate key press.
func (h *PopupHarness) Type(s string) {
	for _, r := range s {
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a special key (enter, escape, backspace, ...).
func (h *PopupHarness) SendKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Commands returns all commands collected since creation.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// ExecuteCmd runs a command and returns the resulting message. Batches are
// flattened and the first non-nil message is returned.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if m := ExecuteCmd(c); m != nil {
				return m
			}
		}
		return nil
	}
	return msg
}
