// Package input translates raw UI events into page transition requests.
// Adapters hold no navigation state of their own; they read the current page
// from the navigator and forward a target and direction.
package input

import (
	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/navigator"
)

// Target is the navigator surface the adapters drive.
type Target interface {
	Current() int
	Total() int
	RequestTransition(page int, dir navigator.Direction) bool
}

// Button handles a click on the prev or next control.
func Button(t Target, c navigator.Control) bool {
	if c == navigator.ControlNext {
		return t.RequestTransition(t.Current()+1, navigator.DirectionForward)
	}
	return t.RequestTransition(t.Current()-1, navigator.DirectionBackward)
}

// Dot handles a click on the 0-based indicator index.
func Dot(t Target, index int) bool {
	return t.RequestTransition(index+1, navigator.DirectionAuto)
}

// Key handles a resolved key action. It reports whether the action is a page
// action, whether or not the request was accepted.
func Key(t Target, action keymap.Action) (handled, accepted bool) {
	switch action {
	case keymap.ActionNextPage:
		return true, t.RequestTransition(t.Current()+1, navigator.DirectionForward)
	case keymap.ActionPrevPage:
		return true, t.RequestTransition(t.Current()-1, navigator.DirectionBackward)
	case keymap.ActionFirstPage:
		return true, t.RequestTransition(1, navigator.DirectionBackward)
	case keymap.ActionLastPage:
		return true, t.RequestTransition(t.Total(), navigator.DirectionForward)
	}
	return false, false
}
