package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/timer"
	"github.com/llehouerou/folio/internal/ui/action"
	"github.com/llehouerou/folio/internal/ui/confirm"
	"github.com/llehouerou/folio/internal/ui/helpbindings"
	"github.com/llehouerou/folio/internal/ui/textinput"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case timer.FiredMsg:
		if ts, ok := m.Sched.(*timer.Tea); ok {
			ts.Fire(msg)
		}
		return m, m.animate()

	case FrameMsg:
		m.framing = false
		return m, m.animate()

	case IssueReloadedMsg:
		return m.handleReload(msg)

	case EmbedsChangedMsg:
		m.Flip.SetEmbeds(msg.PageIndex, msg.Embeds)
		m.Scroll.SetEmbeds(msg.PageIndex, msg.Embeds)
		m.ErrorMsg = ""
		m.Notice = msg.Notice
		return m, nil

	case NoticeMsg:
		m.Notice = string(msg)
		return m, nil

	case ErrorMsg:
		m.ErrorMsg = errmsg.Format(msg.Op, msg.Err)
		slog.Error(string(msg.Op), slog.String("err", msg.Err.Error()))
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// cursor blink and other component messages
	_, cmd := m.Popups.HandleMsg(msg)
	return m, cmd
}

// animate schedules pending timer ticks and keeps frames coming while the
// flip view is moving.
func (m *Model) animate() tea.Cmd {
	var cmds []tea.Cmd
	if ts, ok := m.Sched.(*timer.Tea); ok {
		cmds = append(cmds, ts.Cmd())
	}
	if m.Mode == config.ModeFlip && m.Flip.Animating() && !m.framing {
		m.framing = true
		cmds = append(cmds, FrameCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popups.HideHelp()
	case textinput.Result:
		m.Popups.HideTextInput()
		target, ok := a.Context.(attachTarget)
		if a.Canceled || !ok || a.Text == "" {
			return m, nil
		}
		return m, AttachCmd(m.StateMgr, target, a.Text)
	case confirm.Result:
		m.Popups.HideConfirm()
		target, ok := a.Context.(attachTarget)
		if !a.Confirmed || !ok {
			return m, nil
		}
		return m, RemoveCmd(m.StateMgr, target)
	}
	return m, nil
}

func (m Model) handleReload(msg IssueReloadedMsg) (tea.Model, tea.Cmd) {
	var wait tea.Cmd
	if msg.Watched {
		wait = WaitForReload(m.reloads)
	}
	if msg.Err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpIssueReload, msg.Err)
		slog.Error("reload issue", slog.String("err", msg.Err.Error()))
		return m, wait
	}
	if msg.Issue == nil {
		return m, wait
	}

	// stay on the same page when it still exists, else clamp
	current := m.currentPage()
	if p, ok := m.Issue.Page(current); ok {
		if n, found := msg.Issue.PageNumber(p.ID); found {
			current = n
		}
	}
	offset := m.Scroll.YOffset()

	msg.Issue.Path = m.Issue.Path
	m.Issue = msg.Issue
	contents := m.contents()
	m.Flip.SetPages(contents)
	m.Scroll.SetPages(clonePages(contents))
	if err := m.buildNavigator(current); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpIssueReload, err)
		return m, wait
	}
	m.resize()
	if m.Mode == config.ModeScroll {
		m.Scroll.ScrollBy(offset - m.Scroll.YOffset())
	}
	m.ErrorMsg = ""
	m.Notice = "Reloaded"
	slog.Info("issue reloaded", slog.Int("pages", m.Issue.Len()), slog.Int("page", m.Nav.Current()))
	return m, wait
}
