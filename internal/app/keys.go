package app

import (
	"log/slog"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/input"
	"github.com/llehouerou/folio/internal/keymap"
)

// Binding contexts in priority order for each mode. Keys shared between
// contexts resolve to the mode's own context first.
var (
	flipContexts   = []string{"global", "flip", "scroll", "media"}
	scrollContexts = []string{"global", "scroll", "flip", "media"}

	flipKeys   = keymap.ForContexts(flipContexts...)
	scrollKeys = keymap.ForContexts(scrollContexts...)
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleMsg(msg); handled {
		return m, cmd
	}

	key := msg.String()
	keys, contexts := flipKeys, flipContexts
	if m.Mode == config.ModeScroll {
		keys, contexts = scrollKeys, scrollContexts
	}
	act := keys.Resolve(key)
	if act == "" {
		return m, nil
	}
	m.Notice = ""

	switch act {
	case keymap.ActionQuit:
		saveReading(m.StateMgr, m.Issue, m.currentPage())
		return m, tea.Quit
	case keymap.ActionHelp:
		m.Popups.ShowHelp(contexts)
		return m, nil
	case keymap.ActionToggleMode:
		m.toggleMode()
		return m, m.animate()
	case keymap.ActionFullscreen:
		cmd := m.toggleFullscreen()
		return m, cmd
	case keymap.ActionReload:
		return m, ReloadCmd(m.Issue.Path)
	case keymap.ActionAttach:
		return m, m.startAttach()
	case keymap.ActionRemoveAttach:
		m.confirmRemove()
		return m, nil
	}

	if m.Mode == config.ModeScroll {
		m.handleScrollAction(act, key)
	} else {
		m.handleFlipAction(act, key)
	}
	return m, m.animate()
}

func (m *Model) handleFlipAction(act keymap.Action, key string) {
	if handled, _ := input.Key(m.Nav, act); handled {
		return
	}
	switch act {
	case keymap.ActionGotoPage:
		if d, err := strconv.Atoi(key); err == nil {
			input.Dot(m.Nav, d-1)
		}
	case keymap.ActionNextSection:
		input.Key(m.Nav, keymap.ActionNextPage)
	case keymap.ActionPrevSection:
		input.Key(m.Nav, keymap.ActionPrevPage)
	case keymap.ActionScrollDown:
		m.Flip.ScrollBy(1)
	case keymap.ActionScrollUp:
		m.Flip.ScrollBy(-1)
	}
}

func (m *Model) handleScrollAction(act keymap.Action, key string) {
	switch act {
	case keymap.ActionScrollDown:
		m.Scroll.ScrollBy(1)
	case keymap.ActionScrollUp:
		m.Scroll.ScrollBy(-1)
	case keymap.ActionNextSection, keymap.ActionNextPage:
		m.Scroll.NextSection()
	case keymap.ActionPrevSection, keymap.ActionPrevPage:
		m.Scroll.PrevSection()
	case keymap.ActionFirstPage:
		m.Scroll.GotoSection(0)
	case keymap.ActionLastPage:
		m.Scroll.GotoSection(m.Issue.Len() - 1)
	case keymap.ActionSectionSelect:
		if d, err := strconv.Atoi(key); err == nil {
			m.Scroll.GotoSection(d - 1)
		}
	}
	m.trackSection()
}

// trackSection persists the highlighted section as the current page.
func (m *Model) trackSection() {
	a := m.Scroll.ActiveSection()
	if a < 0 || a == m.lastSection {
		return
	}
	m.lastSection = a
	saveReading(m.StateMgr, m.Issue, a+1)
}

// toggleMode switches between flip and scroll, keeping the page in sync.
func (m *Model) toggleMode() {
	if m.Mode == config.ModeFlip {
		m.Mode = config.ModeScroll
		m.Scroll.GotoSection(m.Nav.Current() - 1)
		m.lastSection = m.Scroll.ActiveSection()
		slog.Debug("mode", slog.String("mode", m.Mode), slog.Int("page", m.Nav.Current()))
		return
	}

	target := m.currentPage()
	m.Mode = config.ModeFlip
	if target != m.Nav.Current() {
		if err := m.buildNavigator(target); err != nil {
			slog.Error("rebuild navigator", slog.String("err", err.Error()))
		}
		saveReading(m.StateMgr, m.Issue, target)
	}
	slog.Debug("mode", slog.String("mode", m.Mode), slog.Int("page", m.Nav.Current()))
}

// toggleFullscreen hides the chrome and, when the terminal allows it,
// switches to the alternate screen.
func (m *Model) toggleFullscreen() tea.Cmd {
	m.Fullscreen = !m.Fullscreen
	m.resize()

	if m.Config.FullscreenMode() == config.FullscreenZen || !m.altScreenAvailable {
		if m.Config.FullscreenMode() == config.FullscreenAltScreen {
			slog.Warn("alternate screen unavailable, hiding chrome only")
		}
		return nil
	}
	m.AltScreen = m.Fullscreen
	if m.Fullscreen {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

// startAttach opens the path prompt for the current page.
func (m *Model) startAttach() tea.Cmd {
	target, ok := m.target()
	if !ok {
		return nil
	}
	title := m.Issue.Pages[target.PageIndex].Title
	cmd := m.Popups.ShowTextInput("Attach to "+title, "path to a PDF or audio file", target)
	m.Popups.TextInput().SetHint("Enter: attach, Esc: cancel")
	return cmd
}

// confirmRemove asks before detaching the last attachment of the page.
func (m *Model) confirmRemove() {
	target, ok := m.target()
	if !ok {
		return
	}
	embeds, err := m.StateMgr.Embeds(target.IssuePath, target.PageID)
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpMediaLoad, err)
		return
	}
	if len(embeds) == 0 {
		m.Notice = "Nothing to remove on this page"
		return
	}
	last := embeds[len(embeds)-1]
	title := m.Issue.Pages[target.PageIndex].Title
	m.Popups.ShowConfirm("Remove attachment?", last.Label()+" will be detached from "+title+".", target)
}
