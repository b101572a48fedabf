package navigator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/folio/internal/timer"
)

// recorder is a Presenter that keeps the last value set for everything.
type recorder struct {
	pages      map[int]Visual
	indicators map[int]bool
	disabled   map[Control]bool
	history    []Visual // visuals set on watchPage, in order
	watchPage  int
	resets     int
	onSelect   func(int)
}

func newRecorder() *recorder {
	return &recorder{
		pages:      make(map[int]Visual),
		indicators: make(map[int]bool),
		disabled:   make(map[Control]bool),
		watchPage:  -1,
	}
}

func (r *recorder) SetPageVisual(index int, v Visual) {
	r.pages[index] = v
	if index == r.watchPage {
		r.history = append(r.history, v)
	}
}

func (r *recorder) SetIndicatorActive(index int, active bool) { r.indicators[index] = active }

func (r *recorder) SetControlDisabled(c Control, disabled bool) { r.disabled[c] = disabled }

func (r *recorder) ResetIndicators(count int, onSelect func(int)) {
	r.resets++
	r.indicators = make(map[int]bool, count)
	r.onSelect = onSelect
}

func (r *recorder) activeIndicators() []int {
	var active []int
	for i := range len(r.indicators) {
		if r.indicators[i] {
			active = append(active, i)
		}
	}
	return active
}

func newTestNavigator(t *testing.T, total int, opts ...Option) (*Navigator, *recorder, *timer.Manual) {
	t.Helper()
	rec := newRecorder()
	clock := timer.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	nav, err := New(total, rec, clock, opts...)
	require.NoError(t, err)
	return nav, rec, clock
}

func TestNew_RejectsZeroPages(t *testing.T) {
	_, err := New(0, newRecorder(), timer.NewManual(time.Time{}))
	assert.ErrorIs(t, err, ErrNoPages)
}

func TestNew_InitialState(t *testing.T) {
	nav, rec, _ := newTestNavigator(t, 5)

	assert.Equal(t, State{Current: 1, Total: 5}, nav.State())
	assert.Equal(t, VisualActive, rec.pages[0])
	for i := 1; i < 5; i++ {
		assert.Equal(t, VisualHidden, rec.pages[i], "page %d", i)
	}
	assert.Equal(t, []int{0}, rec.activeIndicators())
	assert.True(t, rec.disabled[ControlPrev])
	assert.False(t, rec.disabled[ControlNext])
	assert.Equal(t, 1, rec.resets)
}

func TestNew_InitialPage(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		want    int
	}{
		{"in range", 3, 3},
		{"last page", 5, 5},
		{"zero ignored", 0, 1},
		{"past end ignored", 6, 1},
		{"negative ignored", -2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, rec, _ := newTestNavigator(t, 5, WithInitialPage(tt.initial))
			assert.Equal(t, tt.want, nav.Current())
			assert.Equal(t, VisualActive, rec.pages[tt.want-1])
			assert.Equal(t, []int{tt.want - 1}, rec.activeIndicators())
		})
	}
}

func TestNew_SinglePageDisablesBothControls(t *testing.T) {
	_, rec, _ := newTestNavigator(t, 1)
	assert.True(t, rec.disabled[ControlPrev])
	assert.True(t, rec.disabled[ControlNext])
}

func TestRequestTransition_AcceptsEveryValidTarget(t *testing.T) {
	const total = 6
	for from := 1; from <= total; from++ {
		for to := 1; to <= total; to++ {
			if from == to {
				continue
			}
			nav, rec, clock := newTestNavigator(t, total, WithInitialPage(from))

			require.True(t, nav.RequestTransition(to, DirectionAuto), "%d -> %d", from, to)
			assert.Equal(t, to, nav.Current())
			assert.True(t, nav.Animating())
			assert.Equal(t, []int{to - 1}, rec.activeIndicators())
			assert.Equal(t, to == 1, rec.disabled[ControlPrev])
			assert.Equal(t, to == total, rec.disabled[ControlNext])

			clock.Advance(DefaultTransition)
			assert.False(t, nav.Animating())
		}
	}
}

func TestRequestTransition_NoOps(t *testing.T) {
	tests := []struct {
		name   string
		target int
	}{
		{"same page", 3},
		{"zero", 0},
		{"negative", -1},
		{"past end", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, rec, clock := newTestNavigator(t, 5, WithInitialPage(3))
			before := nav.State()
			pagesBefore := len(rec.pages)

			assert.False(t, nav.RequestTransition(tt.target, DirectionAuto))
			assert.Equal(t, before, nav.State())
			assert.Equal(t, pagesBefore, len(rec.pages))
			assert.Zero(t, clock.Pending(), "no-op must not schedule anything")
		})
	}
}

func TestRequestTransition_LockedWhileAnimating(t *testing.T) {
	nav, _, clock := newTestNavigator(t, 5)

	require.True(t, nav.RequestTransition(2, DirectionAuto))
	due, ok := nav.ReleaseAt()
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(DefaultTransition), due)

	clock.Advance(DefaultTransition - time.Millisecond)
	assert.True(t, nav.Animating(), "lock must hold until the full duration")
	assert.False(t, nav.RequestTransition(4, DirectionAuto))
	assert.False(t, nav.Next())
	assert.Equal(t, 2, nav.Current())

	clock.Advance(time.Millisecond)
	assert.False(t, nav.Animating())
	_, ok = nav.ReleaseAt()
	assert.False(t, ok)
	assert.True(t, nav.RequestTransition(4, DirectionAuto))
}

func TestRequestTransition_VisualSequenceForward(t *testing.T) {
	nav, rec, clock := newTestNavigator(t, 3)
	rec.watchPage = 1

	require.True(t, nav.RequestTransition(2, DirectionAuto))
	assert.Equal(t, VisualExitLeft, rec.pages[0])
	assert.Equal(t, []Visual{VisualEnterRight}, rec.history, "placed off-screen first")

	clock.Advance(FrameInterval)
	assert.Equal(t, []Visual{VisualEnterRight, VisualActive}, rec.history)
	assert.Equal(t, VisualExitLeft, rec.pages[0], "exit state held until release")

	clock.Advance(DefaultTransition)
	assert.Equal(t, VisualHidden, rec.pages[0])
	assert.Equal(t, VisualActive, rec.pages[1])
}

func TestRequestTransition_VisualSequenceBackward(t *testing.T) {
	nav, rec, clock := newTestNavigator(t, 3, WithInitialPage(3))
	rec.watchPage = 0

	require.True(t, nav.RequestTransition(1, DirectionAuto))
	assert.Equal(t, VisualExitRight, rec.pages[2])
	assert.Equal(t, []Visual{VisualEnterLeft}, rec.history)

	clock.Advance(DefaultTransition)
	assert.Equal(t, []Visual{VisualEnterLeft, VisualActive}, rec.history)
	assert.Equal(t, VisualHidden, rec.pages[2])
}

func TestRequestTransition_ExplicitDirectionOverridesInference(t *testing.T) {
	nav, rec, _ := newTestNavigator(t, 5, WithInitialPage(4))

	require.True(t, nav.RequestTransition(2, DirectionForward))
	assert.Equal(t, VisualExitLeft, rec.pages[3])
	assert.Equal(t, VisualEnterRight, rec.pages[1])
}

func TestRequestTransition_StateUpdatedBeforeAnimationEnds(t *testing.T) {
	var changes [][2]int
	nav, _, _ := newTestNavigator(t, 4, WithOnChange(func(from, to int) {
		changes = append(changes, [2]int{from, to})
	}))

	require.True(t, nav.RequestTransition(3, DirectionAuto))
	assert.Equal(t, 3, nav.Current(), "observers see the new page mid-animation")
	assert.Equal(t, [][2]int{{1, 3}}, changes)
}

func TestRequestTransition_ExactlyOneIndicatorActive(t *testing.T) {
	nav, rec, clock := newTestNavigator(t, 7)
	for _, target := range []int{4, 7, 1, 2, 6, 5} {
		require.True(t, nav.RequestTransition(target, DirectionAuto))
		assert.Equal(t, []int{target - 1}, rec.activeIndicators())
		clock.Advance(DefaultTransition)
	}
}

func TestControlsFollowCurrentPage(t *testing.T) {
	const total = 4
	nav, rec, clock := newTestNavigator(t, total)
	for page := 1; page <= total; page++ {
		if page > 1 {
			require.True(t, nav.Next())
			clock.Advance(DefaultTransition)
		}
		assert.Equal(t, page == 1, rec.disabled[ControlPrev], "page %d", page)
		assert.Equal(t, page == total, rec.disabled[ControlNext], "page %d", page)
	}
	assert.False(t, nav.Next(), "next on last page is a no-op")
}

func TestInitIndicators_IdempotentAndBound(t *testing.T) {
	nav, rec, clock := newTestNavigator(t, 5, WithInitialPage(2))

	nav.InitIndicators()
	nav.InitIndicators()
	assert.Equal(t, 3, rec.resets)
	assert.Len(t, rec.indicators, 5)
	assert.Equal(t, []int{1}, rec.activeIndicators())

	rec.onSelect(4)
	assert.Equal(t, 5, nav.Current())
	clock.Advance(DefaultTransition)

	rec.onSelect(4)
	assert.False(t, nav.Animating(), "selecting the current dot is a no-op")
}

func TestWithTransition(t *testing.T) {
	nav, _, clock := newTestNavigator(t, 3, WithTransition(time.Second), WithTransition(0))
	assert.Equal(t, time.Second, nav.Duration())

	require.True(t, nav.Next())
	clock.Advance(DefaultTransition)
	assert.True(t, nav.Animating())
	clock.Advance(time.Second - DefaultTransition)
	assert.False(t, nav.Animating())
}

func TestClose_CancelsPendingCallbacks(t *testing.T) {
	nav, _, clock := newTestNavigator(t, 3)
	require.True(t, nav.Next())

	nav.Close()
	assert.Zero(t, clock.Pending())
}

func TestScenario_FourteenPages(t *testing.T) {
	nav, rec, clock := newTestNavigator(t, 14)

	require.True(t, nav.RequestTransition(2, DirectionAuto))
	assert.Equal(t, 2, nav.Current())
	assert.Equal(t, VisualExitLeft, rec.pages[0], "direction inferred forward")
	assert.Equal(t, []int{1}, rec.activeIndicators())
	assert.False(t, rec.disabled[ControlPrev])
	assert.False(t, rec.disabled[ControlNext])

	assert.False(t, nav.RequestTransition(5, DirectionAuto))
	assert.Equal(t, 2, nav.Current())

	clock.Advance(DefaultTransition)

	require.True(t, nav.RequestTransition(1, DirectionBackward))
	assert.Equal(t, 1, nav.Current())
	assert.Equal(t, []int{0}, rec.activeIndicators())
	assert.True(t, rec.disabled[ControlPrev])
}

func TestScenario_LastPageBounds(t *testing.T) {
	nav, _, clock := newTestNavigator(t, 14, WithInitialPage(14))

	assert.False(t, nav.RequestTransition(15, DirectionAuto))
	assert.False(t, nav.RequestTransition(14, DirectionAuto))
	assert.Equal(t, State{Current: 14, Total: 14}, nav.State())
	assert.Zero(t, clock.Pending())
}
