// Package flipview renders an issue one page at a time. It is the presenter
// driven by the navigator: page visuals become a horizontal slide, indicator
// and control state become the dots row under the page.
package flipview

import (
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/folio/internal/icons"
	"github.com/llehouerou/folio/internal/media"
	"github.com/llehouerou/folio/internal/navigator"
	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/page"
	"github.com/llehouerou/folio/internal/ui/render"
	"github.com/llehouerou/folio/internal/ui/styles"
)

var (
	_ navigator.Presenter        = (*Model)(nil)
	_ navigator.IndicatorBuilder = (*Model)(nil)
)

// cacheTTL bounds how stale the relative times on media cards may get.
const cacheTTL = time.Minute

// Option configures a Model.
type Option func(*Model)

// WithClock sets the time source used for the slide animation.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithDuration sets the slide duration. It should match the navigator's
// transition lock.
func WithDuration(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.duration = d
		}
	}
}

// WithWrap caps the text width of pages.
func WithWrap(w int) Option {
	return func(m *Model) { m.wrap = w }
}

// Model is the flip presentation of an issue.
type Model struct {
	ui.Base
	id       string
	now      func() time.Time
	duration time.Duration
	wrap     int

	pages   []page.Content
	visuals []navigator.Visual
	offsets []int

	dots     []bool
	onSelect func(index int)
	disabled [2]bool

	slideStart time.Time

	cache      [][]string
	cacheWidth int
	cachedAt   time.Time
}

// New creates a flip view over pages.
func New(pages []page.Content, opts ...Option) *Model {
	m := &Model{
		id:       zone.NewPrefix(),
		now:      time.Now,
		duration: navigator.DefaultTransition,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.SetPages(pages)
	return m
}

// SetPages replaces the page contents. Visuals are reset to hidden; the
// navigator built over the new pages sets them again.
func (m *Model) SetPages(pages []page.Content) {
	m.pages = pages
	m.visuals = make([]navigator.Visual, len(pages))
	m.offsets = make([]int, len(pages))
	m.dots = make([]bool, len(pages))
	m.slideStart = time.Time{}
	m.invalidate()
}

// SetEmbeds updates the media cards of page index.
func (m *Model) SetEmbeds(index int, embeds []media.Embed) {
	if index < 0 || index >= len(m.pages) {
		return
	}
	m.pages[index].Embeds = embeds
	m.cache[index] = nil
}

// SetSize implements the sizing contract of ui.Base and drops the layout
// cache when the width changes.
func (m *Model) SetSize(width, height int) {
	if width != m.Width() {
		m.invalidate()
	}
	m.Base.SetSize(width, height)
	for i := range m.offsets {
		m.offsets[i] = min(m.offsets[i], m.maxOffset(i))
	}
}

// SetPageVisual implements navigator.Presenter.
func (m *Model) SetPageVisual(index int, v navigator.Visual) {
	if index < 0 || index >= len(m.visuals) {
		return
	}
	if v == navigator.VisualEnterRight || v == navigator.VisualEnterLeft {
		m.slideStart = m.now()
		m.offsets[index] = 0
	}
	m.visuals[index] = v
}

// SetIndicatorActive implements navigator.Presenter.
func (m *Model) SetIndicatorActive(index int, active bool) {
	if index < 0 || index >= len(m.dots) {
		return
	}
	m.dots[index] = active
}

// SetControlDisabled implements navigator.Presenter.
func (m *Model) SetControlDisabled(c navigator.Control, disabled bool) {
	m.disabled[c] = disabled
}

// ResetIndicators implements navigator.IndicatorBuilder.
func (m *Model) ResetIndicators(count int, onSelect func(index int)) {
	m.dots = make([]bool, count)
	m.onSelect = onSelect
}

// SelectDot activates indicator index as if it was clicked.
func (m *Model) SelectDot(index int) {
	if m.onSelect != nil && index >= 0 && index < len(m.dots) {
		m.onSelect(index)
	}
}

// Visual returns the current visual of page index.
func (m *Model) Visual(index int) navigator.Visual {
	if index < 0 || index >= len(m.visuals) {
		return navigator.VisualHidden
	}
	return m.visuals[index]
}

// ControlDisabled reports the state of a prev/next control.
func (m *Model) ControlDisabled(c navigator.Control) bool {
	return m.disabled[c]
}

// Animating reports whether frames still change over time.
func (m *Model) Animating() bool {
	if m.outgoing() >= 0 {
		return true
	}
	for _, v := range m.visuals {
		if v == navigator.VisualEnterLeft || v == navigator.VisualEnterRight {
			return true
		}
	}
	return false
}

// ScrollBy moves the current page's text by delta lines.
func (m *Model) ScrollBy(delta int) {
	i := m.incoming()
	if i < 0 {
		return
	}
	m.offsets[i] = max(0, min(m.offsets[i]+delta, m.maxOffset(i)))
}

// ScrollOffset returns the scroll position of page index.
func (m *Model) ScrollOffset(index int) int {
	if index < 0 || index >= len(m.offsets) {
		return 0
	}
	return m.offsets[index]
}

func (m *Model) pageHeight() int {
	return m.ContentHeight(ui.ControlsHeight)
}

func (m *Model) maxOffset(i int) int {
	if m.Width() == 0 {
		return 0
	}
	return max(len(m.lines(i))-m.pageHeight(), 0)
}

func (m *Model) incoming() int {
	for i, v := range m.visuals {
		switch v {
		case navigator.VisualActive, navigator.VisualEnterLeft, navigator.VisualEnterRight:
			return i
		}
	}
	return -1
}

func (m *Model) outgoing() int {
	for i, v := range m.visuals {
		if v == navigator.VisualExitLeft || v == navigator.VisualExitRight {
			return i
		}
	}
	return -1
}

func (m *Model) invalidate() {
	m.cache = make([][]string, len(m.pages))
}

// lines returns the laid-out text of page i, cached per width.
func (m *Model) lines(i int) []string {
	now := m.now()
	w := m.ContentWidth(m.wrap)
	if w != m.cacheWidth || now.Sub(m.cachedAt) > cacheTTL || len(m.cache) != len(m.pages) {
		m.invalidate()
		m.cacheWidth = w
		m.cachedAt = now
	}
	if m.cache[i] == nil {
		m.cache[i] = page.Render(m.pages[i], w, true, now)
	}
	return m.cache[i]
}

// progress returns the eased slide position in [0, 1].
func (m *Model) progress() float64 {
	if m.slideStart.IsZero() {
		return 1
	}
	p := float64(m.now().Sub(m.slideStart)) / float64(m.duration)
	p = max(0, min(p, 1))
	return 1 - math.Pow(1-p, 3)
}

// frame renders page i at rest, exactly width cells wide and pageHeight rows.
func (m *Model) frame(i int) []string {
	width, height := m.Width(), m.pageHeight()
	rows := make([]string, height)
	blank := strings.Repeat(" ", width)
	for r := range rows {
		rows[r] = blank
	}
	if i < 0 {
		return rows
	}

	lines := m.lines(i)
	margin := strings.Repeat(" ", max((width-m.cacheWidth)/2, 0))
	off := m.offsets[i]
	for r := 0; r < height && off+r < len(lines); r++ {
		rows[r] = fit(margin+lines[off+r], width)
	}
	return rows
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// View renders the page area and the controls row.
func (m *Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 || len(m.pages) == 0 {
		return ""
	}
	rows := m.pageRows()
	return strings.Join(rows, "\n") + "\n" + m.controls()
}

func (m *Model) pageRows() []string {
	in, out := m.incoming(), m.outgoing()
	incoming := m.frame(in)
	if out < 0 || out == in {
		return incoming
	}
	outgoing := m.frame(out)

	width := m.Width()
	d := int(math.Round(m.progress() * float64(width)))
	dIn := d
	if v := m.visuals[in]; v == navigator.VisualEnterLeft || v == navigator.VisualEnterRight {
		// placed off-screen, not yet moving
		dIn = 0
	}
	gap := strings.Repeat(" ", d-dIn)
	forward := m.visuals[out] == navigator.VisualExitLeft

	rows := make([]string, len(incoming))
	for r := range rows {
		if forward {
			rows[r] = ansi.Cut(outgoing[r], d, width) + gap + ansi.Cut(incoming[r], 0, dIn)
		} else {
			rows[r] = ansi.Cut(incoming[r], width-dIn, width) + gap + ansi.Cut(outgoing[r], 0, width-d)
		}
	}
	return rows
}

func (m *Model) zoneID(name string) string {
	return m.id + name
}

func (m *Model) dotZone(i int) string {
	return m.zoneID("dot" + strconv.Itoa(i))
}

func (m *Model) controls() string {
	st := styles.T().S()
	width := m.Width()

	control := func(c navigator.Control, label string) string {
		style := st.Accent
		if m.disabled[c] {
			style = st.Subtle
		}
		return zone.Mark(m.zoneID(c.String()), style.Render(label))
	}
	prev := control(navigator.ControlPrev, icons.Prev()+" prev")
	next := control(navigator.ControlNext, "next "+icons.Next())

	dots := make([]string, len(m.dots))
	current := 0
	for i, active := range m.dots {
		style := st.Muted
		if active {
			style = st.Accent
			current = i + 1
		}
		dots[i] = zone.Mark(m.dotZone(i), style.Render(icons.Dot(active)))
	}
	middle := strings.Join(dots, " ")

	room := width - ansi.StringWidth(prev) - ansi.StringWidth(next) - 2
	if ansi.StringWidth(middle) > room {
		middle = st.Muted.Render(strconv.Itoa(current) + "/" + strconv.Itoa(len(m.dots)))
	}
	return " " + prev + render.Center(middle, room) + next + " "
}

// HitKind classifies a mouse hit on the controls row.
type HitKind int

const (
	HitNone HitKind = iota
	HitDot
	HitControl
)

// Hit is the result of HitTest.
type Hit struct {
	Kind    HitKind
	Index   int // dot index for HitDot
	Control navigator.Control
}

// HitTest finds the dot or enabled control under the mouse. It relies on
// the zones of the last scanned frame.
func (m *Model) HitTest(msg tea.MouseMsg) Hit {
	for i := range m.dots {
		if zone.Get(m.dotZone(i)).InBounds(msg) {
			return Hit{Kind: HitDot, Index: i}
		}
	}
	for _, c := range []navigator.Control{navigator.ControlPrev, navigator.ControlNext} {
		if !m.disabled[c] && zone.Get(m.zoneID(c.String())).InBounds(msg) {
			return Hit{Kind: HitControl, Control: c}
		}
	}
	return Hit{}
}
