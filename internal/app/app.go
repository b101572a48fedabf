package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/input"
	"github.com/llehouerou/folio/internal/issue"
	"github.com/llehouerou/folio/internal/navigator"
	"github.com/llehouerou/folio/internal/state"
	"github.com/llehouerou/folio/internal/timer"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/flipview"
	"github.com/llehouerou/folio/internal/ui/headerbar"
	"github.com/llehouerou/folio/internal/ui/page"
	"github.com/llehouerou/folio/internal/ui/scrollview"
)

// Option configures the model.
type Option func(*Model)

// WithReloads makes the model apply watcher results received on ch.
func WithReloads(ch <-chan issue.Reload) Option {
	return func(m *Model) { m.reloads = ch }
}

// WithAltScreen declares whether the terminal supports the alternate
// screen. Without it fullscreen only hides the chrome.
func WithAltScreen(available bool) Option {
	return func(m *Model) { m.altScreenAvailable = available }
}

// WithScheduler replaces the bubbletea-backed scheduler.
func WithScheduler(s timer.Scheduler) Option {
	return func(m *Model) { m.Sched = s }
}

// Model is the root application model containing all state.
type Model struct {
	Issue    *issue.Issue
	Config   *config.Config
	StateMgr state.Interface

	Mode   string
	Sched  timer.Scheduler
	Nav    *navigator.Navigator
	Flip   *flipview.Model
	Scroll *scrollview.Model
	Header headerbar.Model
	Swipe  *input.Swipe
	Popups PopupManager

	Fullscreen bool
	AltScreen  bool
	ErrorMsg   string
	Notice     string
	Width      int
	Height     int

	reloads            <-chan issue.Reload
	altScreenAvailable bool
	framing            bool
	lastSection        int
}

// New creates the application model for iss. initialPage is the page asked
// for on the command line; 0 restores the saved page, falling back to 1.
func New(cfg *config.Config, iss *issue.Issue, st state.Interface, initialPage int, opts ...Option) (Model, error) {
	m := Model{
		Issue:       iss,
		Config:      cfg,
		StateMgr:    st,
		Mode:        cfg.Mode(),
		Header:      headerbar.New(),
		Swipe:       input.NewSwipe(cfg.Swipe()),
		Popups:      NewPopupManager(),
		lastSection: -1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.Sched == nil {
		m.Sched = timer.NewTea()
	}

	if initialPage == 0 {
		initialPage = m.savedPage()
	}

	contents := m.contents()
	m.Flip = flipview.New(contents,
		flipview.WithClock(m.Sched.Now),
		flipview.WithDuration(cfg.Transition()),
		flipview.WithWrap(cfg.Wrap()))
	m.Scroll = scrollview.New(clonePages(contents),
		scrollview.WithProbe(cfg.Offset()),
		scrollview.WithRevealRatio(cfg.Reveal()),
		scrollview.WithHeaderThreshold(cfg.HeaderThreshold()),
		scrollview.WithWrap(cfg.Wrap()))

	if err := m.buildNavigator(initialPage); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return WaitForReload(m.reloads)
}

// savedPage returns the page stored for the issue, preferring the saved
// page ID over the ordinal so edits that move pages keep the reader in place.
func (m *Model) savedPage() int {
	r, err := m.StateMgr.GetReading(m.Issue.Path)
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpStateLoad, err)
		slog.Error("restore reading position", slog.String("err", err.Error()))
		return 1
	}
	if r == nil {
		return 1
	}
	if n, ok := m.Issue.PageNumber(r.PageID); ok {
		return n
	}
	return r.PageNumber
}

// contents builds the renderable pages with their stored media.
func (m *Model) contents() []page.Content {
	out := make([]page.Content, len(m.Issue.Pages))
	for i, p := range m.Issue.Pages {
		embeds, err := m.StateMgr.Embeds(m.Issue.Path, p.ID)
		if err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpMediaLoad, err)
			slog.Error("load page media", slog.String("page", p.ID), slog.String("err", err.Error()))
		}
		out[i] = page.Content{Title: p.Title, Body: p.Body, Embeds: embeds}
	}
	return out
}

func clonePages(pages []page.Content) []page.Content {
	return append([]page.Content(nil), pages...)
}

// buildNavigator replaces the navigator, starting on page current clamped to
// the page count.
func (m *Model) buildNavigator(current int) error {
	if m.Nav != nil {
		m.Nav.Close()
	}
	current = max(1, min(current, len(m.Issue.Pages)))

	iss, st := m.Issue, m.StateMgr
	nav, err := navigator.New(len(iss.Pages), m.Flip, m.Sched,
		navigator.WithTransition(m.Config.Transition()),
		navigator.WithInitialPage(current),
		navigator.WithOnChange(func(from, to int) {
			slog.Debug("page change", slog.Int("from", from), slog.Int("to", to))
			saveReading(st, iss, to)
		}),
	)
	if err != nil {
		return err
	}
	m.Nav = nav
	return nil
}

// resize lays components out for the current size and chrome.
func (m *Model) resize() {
	bodyHeight := m.Height
	if !m.Fullscreen {
		bodyHeight -= ui.HeaderHeight + ui.FooterHeight
	}
	bodyHeight = max(bodyHeight, ui.ControlsHeight+1)
	m.Flip.SetSize(m.Width, bodyHeight)
	m.Scroll.SetSize(m.Width, bodyHeight)
	m.Popups.SetSize(m.Width, m.Height)
}
