// Package scrollview renders an issue as one continuous document. It tracks
// the section under the reading line, reveals sections as they scroll into
// view and reports when the header should compact.
package scrollview

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/folio/internal/media"
	"github.com/llehouerou/folio/internal/scrollspy"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/page"
	"github.com/llehouerou/folio/internal/ui/styles"
)

// Defaults used when no option overrides them.
const (
	DefaultProbe           = 3
	DefaultRevealRatio     = 0.85
	DefaultHeaderThreshold = 2
)

// Option configures a Model.
type Option func(*Model)

// WithProbe sets how many lines below the top of the view the active
// section is picked.
func WithProbe(lines int) Option {
	return func(m *Model) { m.probe = lines }
}

// WithRevealRatio sets the fraction of the view height a section's top must
// cross to be revealed.
func WithRevealRatio(r float64) Option {
	return func(m *Model) { m.ratio = r }
}

// WithHeaderThreshold sets how many lines must be scrolled before the header
// compacts.
func WithHeaderThreshold(lines int) Option {
	return func(m *Model) { m.headerThreshold = lines }
}

// WithWrap caps the text width of sections.
func WithWrap(w int) Option {
	return func(m *Model) { m.wrap = w }
}

// WithClock sets the time source for relative times on media cards.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// Model is the scroll presentation of an issue.
type Model struct {
	ui.Base
	vp       viewport.Model
	pages    []page.Content
	rendered [][]string
	sections []scrollspy.Section
	revealer *scrollspy.Revealer

	probe           int
	ratio           float64
	headerThreshold int
	wrap            int
	now             func() time.Time
}

// New creates a scroll view over pages.
func New(pages []page.Content, opts ...Option) *Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	m := &Model{
		vp:              vp,
		probe:           DefaultProbe,
		ratio:           DefaultRevealRatio,
		headerThreshold: DefaultHeaderThreshold,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.SetPages(pages)
	return m
}

// SetPages replaces the page contents, keeping the scroll position when
// possible. Reveal state starts over.
func (m *Model) SetPages(pages []page.Content) {
	m.pages = pages
	m.revealer = scrollspy.NewRevealer(len(pages))
	m.relayout()
}

// SetEmbeds updates the media cards of page index.
func (m *Model) SetEmbeds(index int, embeds []media.Embed) {
	if index < 0 || index >= len(m.pages) {
		return
	}
	m.pages[index].Embeds = embeds
	m.relayout()
}

// SetSize resizes the view and lays the document out again.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.vp.Width = width
	m.vp.Height = height
	m.relayout()
}

func (m *Model) relayout() {
	m.rendered = make([][]string, len(m.pages))
	heights := make([]int, len(m.pages))
	if m.Width() > 0 {
		w := m.ContentWidth(m.wrap)
		margin := strings.Repeat(" ", max((m.Width()-w)/2, 0))
		now := m.now()
		for i, p := range m.pages {
			lines := page.Render(p, w, false, now)
			for j, l := range lines {
				lines[j] = margin + l
			}
			m.rendered[i] = lines
			heights[i] = len(lines)
		}
	}
	m.sections = scrollspy.Layout(heights, ui.SectionGap)
	m.afterScroll(true)
}

// afterScroll reveals sections that entered the view and refreshes the
// content when the reveal state changed.
func (m *Model) afterScroll(force bool) {
	newly := m.revealer.Update(m.sections, m.vp.YOffset, m.vp.Height, m.ratio)
	if len(newly) > 0 || force {
		m.vp.SetContent(m.content())
	}
}

func (m *Model) content() string {
	dim := styles.T().S().Subtle
	var b strings.Builder
	for i, lines := range m.rendered {
		if i > 0 {
			b.WriteString(strings.Repeat("\n", ui.SectionGap+1))
		}
		for j, l := range lines {
			if j > 0 {
				b.WriteByte('\n')
			}
			if !m.revealer.Revealed(i) {
				l = dim.Render(ansi.Strip(l))
			}
			b.WriteString(l)
		}
	}
	return b.String()
}

// Update forwards mouse wheel and viewport keys to the viewport.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	m.afterScroll(false)
	return cmd
}

// ScrollBy moves the view by delta lines.
func (m *Model) ScrollBy(delta int) {
	if delta > 0 {
		m.vp.ScrollDown(delta)
	} else {
		m.vp.ScrollUp(-delta)
	}
	m.afterScroll(false)
}

// GotoSection scrolls section i to the top of the view, or as close as the
// document length allows.
func (m *Model) GotoSection(i int) bool {
	if i < 0 || i >= len(m.sections) {
		return false
	}
	m.vp.SetYOffset(m.sections[i].Top)
	m.afterScroll(false)
	return true
}

// NextSection scrolls to the first section starting below the top of the
// view. It reports false when the view cannot move further.
func (m *Model) NextSection() bool {
	before := m.vp.YOffset
	for i, s := range m.sections {
		if s.Top > before {
			m.GotoSection(i)
			break
		}
	}
	return m.vp.YOffset != before
}

// PrevSection scrolls to the last section starting above the top of the
// view.
func (m *Model) PrevSection() bool {
	before := m.vp.YOffset
	for i := len(m.sections) - 1; i >= 0; i-- {
		if m.sections[i].Top < before {
			m.GotoSection(i)
			break
		}
	}
	return m.vp.YOffset != before
}

// ActiveSection returns the section under the reading line, or -1.
func (m *Model) ActiveSection() int {
	return scrollspy.Active(m.sections, m.vp.YOffset, m.probe)
}

// HeaderScrolled reports whether the header should use its compact style.
func (m *Model) HeaderScrolled() bool {
	return scrollspy.HeaderScrolled(m.vp.YOffset, m.headerThreshold)
}

// Revealed reports whether section i has been revealed.
func (m *Model) Revealed(i int) bool {
	return m.revealer.Revealed(i)
}

// Sections returns the line ranges of every section.
func (m *Model) Sections() []scrollspy.Section {
	return m.sections
}

// YOffset returns the scroll position in lines.
func (m *Model) YOffset() int {
	return m.vp.YOffset
}

// ScrollPercent returns how far through the document the view is.
func (m *Model) ScrollPercent() float64 {
	return m.vp.ScrollPercent()
}

// View renders the visible part of the document.
func (m *Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	return m.vp.View()
}
