package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/input"
	"github.com/llehouerou/folio/internal/ui/flipview"
)

// wheelLines is how far one wheel notch scrolls a flip page.
const wheelLines = 3

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Popups.ActivePopup() != PopupNone {
		return m, nil
	}

	if tea.MouseEvent(msg).IsWheel() {
		if m.Mode == config.ModeScroll {
			cmd := m.Scroll.Update(msg)
			m.trackSection()
			return m, cmd
		}
		switch msg.Button { //nolint:exhaustive // only vertical wheel scrolls
		case tea.MouseButtonWheelDown:
			m.Flip.ScrollBy(wheelLines)
		case tea.MouseButtonWheelUp:
			m.Flip.ScrollBy(-wheelLines)
		}
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive // motion is ignored
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.Mode == config.ModeFlip {
			m.Swipe.Handle(m.Nav, msg)
		}
		return m, nil
	case tea.MouseActionRelease:
		m.handleClick(msg)
		return m, m.animate()
	}
	return m, nil
}

// handleClick resolves a release as a swipe or a click on a zone.
func (m *Model) handleClick(msg tea.MouseMsg) {
	if m.Mode == config.ModeFlip {
		if swiped, _ := m.Swipe.Handle(m.Nav, msg); swiped {
			return
		}
	}

	if !m.Fullscreen {
		if i := m.Header.SectionAt(msg, m.Issue.Len()); i >= 0 {
			if m.Mode == config.ModeScroll {
				m.Scroll.GotoSection(i)
				m.trackSection()
			} else {
				input.Dot(m.Nav, i)
			}
			return
		}
	}

	if m.Mode != config.ModeFlip {
		return
	}
	switch hit := m.Flip.HitTest(msg); hit.Kind {
	case flipview.HitDot:
		m.Flip.SelectDot(hit.Index)
	case flipview.HitControl:
		input.Button(m.Nav, hit.Control)
	case flipview.HitNone:
	}
}
