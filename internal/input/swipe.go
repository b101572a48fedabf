package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/folio/internal/navigator"
)

// DefaultSwipeThreshold is the horizontal distance a drag must exceed to
// count as a swipe.
const DefaultSwipeThreshold = 60

// Swipe recognizes horizontal drags: press, then release far enough to the
// left (next page) or right (previous page).
type Swipe struct {
	threshold int
	startX    int
	tracking  bool
}

// NewSwipe creates a swipe recognizer. Non-positive thresholds fall back to
// DefaultSwipeThreshold.
func NewSwipe(threshold int) *Swipe {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Swipe{threshold: threshold}
}

// Threshold returns the swipe distance threshold.
func (s *Swipe) Threshold() int {
	return s.threshold
}

// Handle feeds a mouse event. It reports whether a swipe completed and, if so,
// whether the navigator accepted the resulting request.
func (s *Swipe) Handle(t Target, msg tea.MouseMsg) (swiped, accepted bool) {
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
		return false, false
	}
	switch msg.Action {
	case tea.MouseActionPress:
		s.startX = msg.X
		s.tracking = true
	case tea.MouseActionRelease:
		if !s.tracking {
			return false, false
		}
		s.tracking = false
		dir, ok := s.classify(msg.X - s.startX)
		if !ok {
			return false, false
		}
		if dir == navigator.DirectionForward {
			return true, t.RequestTransition(t.Current()+1, dir)
		}
		return true, t.RequestTransition(t.Current()-1, dir)
	}
	return false, false
}

// Cancel drops a drag in progress.
func (s *Swipe) Cancel() {
	s.tracking = false
}

func (s *Swipe) classify(dx int) (navigator.Direction, bool) {
	switch {
	case dx < -s.threshold:
		return navigator.DirectionForward, true
	case dx > s.threshold:
		return navigator.DirectionBackward, true
	}
	return navigator.DirectionAuto, false
}
