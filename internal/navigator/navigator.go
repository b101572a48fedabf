// Package navigator implements the page-flip state machine: the current page,
// the single-transition lock and the derived indicator and control state.
package navigator

import (
	"errors"
	"time"

	"github.com/llehouerou/folio/internal/timer"
)

const (
	// DefaultTransition is how long a transition holds the lock.
	DefaultTransition = 450 * time.Millisecond
	// FrameInterval is the delay before an incoming page is moved from its
	// off-screen position to rest, one frame after being placed.
	FrameInterval = 16 * time.Millisecond
)

// ErrNoPages is returned when a navigator is created without pages.
var ErrNoPages = errors.New("navigator needs at least one page")

// Option configures a Navigator.
type Option func(*Navigator)

// WithTransition overrides the transition lock duration. Non-positive values
// are ignored.
func WithTransition(d time.Duration) Option {
	return func(n *Navigator) {
		if d > 0 {
			n.duration = d
		}
	}
}

// WithInitialPage starts the navigator on page p when p is in range.
func WithInitialPage(p int) Option {
	return func(n *Navigator) {
		if p >= 1 && p <= n.total {
			n.current = p
		}
	}
}

// WithOnChange registers a callback run after every accepted transition with
// the previous and new page.
func WithOnChange(fn func(from, to int)) Option {
	return func(n *Navigator) {
		n.onChange = fn
	}
}

// Navigator serializes transitions between pages. It is not safe for
// concurrent use; all calls, including scheduled callbacks, are expected on
// one goroutine.
type Navigator struct {
	current   int
	total     int
	animating bool

	presenter Presenter
	sched     timer.Scheduler
	duration  time.Duration
	onChange  func(from, to int)

	outgoing int // 1-based page exiting, 0 when none
	release  timer.Task
	settle   timer.Task
}

// New creates a navigator over total pages and renders its initial state.
func New(total int, p Presenter, s timer.Scheduler, opts ...Option) (*Navigator, error) {
	if total < 1 {
		return nil, ErrNoPages
	}
	n := &Navigator{
		current:   1,
		total:     total,
		presenter: p,
		sched:     s,
		duration:  DefaultTransition,
	}
	for _, opt := range opts {
		opt(n)
	}

	for i := range total {
		v := VisualHidden
		if i+1 == n.current {
			v = VisualActive
		}
		n.presenter.SetPageVisual(i, v)
	}
	n.InitIndicators()
	n.RefreshControls()
	return n, nil
}

// Current returns the 1-based current page.
func (n *Navigator) Current() int { return n.current }

// Total returns the page count.
func (n *Navigator) Total() int { return n.total }

// Animating reports whether a transition holds the lock.
func (n *Navigator) Animating() bool { return n.animating }

// Duration returns the transition lock duration.
func (n *Navigator) Duration() time.Duration { return n.duration }

// State returns a snapshot of the navigation state.
func (n *Navigator) State() State {
	return State{Current: n.current, Total: n.total, Animating: n.animating}
}

// ReleaseAt returns when the in-flight transition releases the lock.
func (n *Navigator) ReleaseAt() (time.Time, bool) {
	if !n.animating || n.release == nil {
		return time.Time{}, false
	}
	return n.release.Due(), true
}

// Next requests the page after the current one.
func (n *Navigator) Next() bool {
	return n.RequestTransition(n.current+1, DirectionForward)
}

// Prev requests the page before the current one.
func (n *Navigator) Prev() bool {
	return n.RequestTransition(n.current-1, DirectionBackward)
}

// RequestTransition moves to target. Requests for the current page, for a
// page out of range, or made while a transition is in flight are ignored and
// report false.
func (n *Navigator) RequestTransition(target int, dir Direction) bool {
	if target == n.current || n.animating || target < 1 || target > n.total {
		return false
	}
	n.animating = true

	forward := target > n.current
	switch dir {
	case DirectionForward:
		forward = true
	case DirectionBackward:
		forward = false
	}

	from := n.current
	n.outgoing = from
	if forward {
		n.presenter.SetPageVisual(from-1, VisualExitLeft)
		n.presenter.SetPageVisual(target-1, VisualEnterRight)
	} else {
		n.presenter.SetPageVisual(from-1, VisualExitRight)
		n.presenter.SetPageVisual(target-1, VisualEnterLeft)
	}
	// The incoming page stays off-screen for one frame.
	n.settle = n.sched.AfterFunc(FrameInterval, func() {
		n.settle = nil
		if n.current == target {
			n.presenter.SetPageVisual(target-1, VisualActive)
		}
	})

	n.current = target
	n.refreshIndicators()
	n.RefreshControls()

	n.release = n.sched.AfterFunc(n.duration, n.finish)

	if n.onChange != nil {
		n.onChange(from, target)
	}
	return true
}

func (n *Navigator) finish() {
	if n.outgoing != 0 && n.outgoing != n.current {
		n.presenter.SetPageVisual(n.outgoing-1, VisualHidden)
	}
	n.outgoing = 0
	n.release = nil
	n.animating = false
}

// InitIndicators rebuilds the dot indicators from the page count and marks
// the current one active.
func (n *Navigator) InitIndicators() {
	if b, ok := n.presenter.(IndicatorBuilder); ok {
		b.ResetIndicators(n.total, func(index int) {
			n.RequestTransition(index+1, DirectionAuto)
		})
	}
	n.refreshIndicators()
}

func (n *Navigator) refreshIndicators() {
	for i := range n.total {
		n.presenter.SetIndicatorActive(i, i+1 == n.current)
	}
}

// RefreshControls disables prev on the first page and next on the last.
func (n *Navigator) RefreshControls() {
	n.presenter.SetControlDisabled(ControlPrev, n.current == 1)
	n.presenter.SetControlDisabled(ControlNext, n.current == n.total)
}

// Close cancels pending callbacks. It is used when the navigator is
// discarded, never to interrupt a transition of a live navigator.
func (n *Navigator) Close() {
	if n.settle != nil {
		n.settle.Stop()
		n.settle = nil
	}
	if n.release != nil {
		n.release.Stop()
		n.release = nil
	}
}
