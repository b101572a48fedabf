// Package action carries results from popups back to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result emitted by a UI component. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg delivers an Action to the app. Source names the emitting component.
type Msg struct {
	Source string
	Action Action
}

// Cmd returns a command that delivers a as coming from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
