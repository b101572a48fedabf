package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/ui/confirm"
	"github.com/llehouerou/folio/internal/ui/helpbindings"
	"github.com/llehouerou/folio/internal/ui/popup"
	"github.com/llehouerou/folio/internal/ui/textinput"
)

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupTextInput
	PopupConfirm
)

// PopupManager manages the modal popups.
type PopupManager struct {
	help      helpbindings.Model
	showHelp  bool
	textInput textinput.Model
	showInput bool
	confirm   confirm.Model

	// Dimensions for popup rendering
	width  int
	height int
}

// NewPopupManager creates a new PopupManager with initialized components.
func NewPopupManager() PopupManager {
	return PopupManager{
		help:      helpbindings.New(),
		textInput: textinput.New(),
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.help.SetSize(width, height)
	p.textInput.SetSize(width, height)
	p.confirm.SetSize(width, height)
}

// ActivePopup returns which popup is currently active (if any).
func (p *PopupManager) ActivePopup() PopupType {
	if p.showHelp {
		return PopupHelp
	}
	if p.showInput {
		return PopupTextInput
	}
	if p.confirm.Active() {
		return PopupConfirm
	}
	return PopupNone
}

// --- Help Popup ---

// ShowHelp displays the help popup with the given contexts.
func (p *PopupManager) ShowHelp(contexts []string) {
	p.help.SetContexts(contexts)
	p.help.SetSize(p.width, p.height)
	p.showHelp = true
}

// HideHelp hides the help popup.
func (p *PopupManager) HideHelp() {
	p.showHelp = false
}

// --- Text Input Popup ---

// ShowTextInput displays the prompt and returns its blink command.
func (p *PopupManager) ShowTextInput(title, placeholder string, context any) tea.Cmd {
	p.showInput = true
	p.textInput.Start(title, placeholder, "", context, p.width, p.height)
	return p.textInput.Init()
}

// HideTextInput hides the text input popup.
func (p *PopupManager) HideTextInput() {
	p.showInput = false
	p.textInput.Reset()
}

// TextInput returns the text input model for direct access.
func (p *PopupManager) TextInput() *textinput.Model {
	return &p.textInput
}

// --- Confirm Popup ---

// ShowConfirm asks a yes/no question; the answer carries context back.
func (p *PopupManager) ShowConfirm(title, message string, context any) {
	p.confirm.Show(title, message, context, p.width, p.height)
}

// HideConfirm hides the confirmation popup.
func (p *PopupManager) HideConfirm() {
	p.confirm.Reset()
}

// --- Key Handling ---

// HandleMsg routes a message to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed it.
func (p *PopupManager) HandleMsg(msg tea.Msg) (bool, tea.Cmd) {
	switch p.ActivePopup() {
	case PopupHelp:
		if _, ok := msg.(tea.KeyMsg); !ok {
			return false, nil
		}
		_, cmd := p.help.Update(msg)
		return true, cmd
	case PopupTextInput:
		_, cmd := p.textInput.Update(msg)
		_, isKey := msg.(tea.KeyMsg)
		return isKey, cmd
	case PopupConfirm:
		if _, ok := msg.(tea.KeyMsg); !ok {
			return false, nil
		}
		_, cmd := p.confirm.Update(msg)
		return true, cmd
	case PopupNone:
	}
	return false, nil
}

// --- Rendering ---

// RenderOverlay renders the active popup on top of the base view.
func (p *PopupManager) RenderOverlay(base string) string {
	switch p.ActivePopup() {
	case PopupHelp:
		box := popup.Box(p.help.View(), p.width, p.height, popup.WidthAuto)
		return popup.Overlay(base, box, p.width, p.height)
	case PopupTextInput:
		box := popup.Box(p.textInput.View(), p.width, p.height, popup.WidthPrompt)
		return popup.Overlay(base, box, p.width, p.height)
	case PopupConfirm:
		box := popup.Box(p.confirm.View(), p.width, p.height, popup.WidthDialog)
		return popup.Overlay(base, box, p.width, p.height)
	case PopupNone:
	}
	return base
}
