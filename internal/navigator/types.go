package navigator

// Direction is the travel direction of a transition.
type Direction int

const (
	// DirectionAuto infers the direction from the target page.
	DirectionAuto Direction = iota
	DirectionForward
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "auto"
	}
}

// Visual is the presentation state of one page.
type Visual int

const (
	VisualHidden Visual = iota
	// VisualActive is the current page at its resting position.
	VisualActive
	// VisualEnterRight is the incoming page placed off-screen on the right,
	// used when travelling forward.
	VisualEnterRight
	// VisualEnterLeft is the incoming page placed off-screen on the left,
	// used when travelling backward.
	VisualEnterLeft
	// VisualExitLeft is the outgoing page when travelling forward.
	VisualExitLeft
	// VisualExitRight is the outgoing page when travelling backward.
	VisualExitRight
)

func (v Visual) String() string {
	switch v {
	case VisualActive:
		return "active"
	case VisualEnterRight:
		return "enter-right"
	case VisualEnterLeft:
		return "enter-left"
	case VisualExitLeft:
		return "exit-left"
	case VisualExitRight:
		return "exit-right"
	default:
		return "hidden"
	}
}

// Control identifies a prev/next control.
type Control int

const (
	ControlPrev Control = iota
	ControlNext
)

func (c Control) String() string {
	if c == ControlNext {
		return "next"
	}
	return "prev"
}

// Presenter is the host UI the navigator drives. Page and indicator indices
// are 0-based.
type Presenter interface {
	SetPageVisual(index int, v Visual)
	SetIndicatorActive(index int, active bool)
	SetControlDisabled(c Control, disabled bool)
}

// IndicatorBuilder is implemented by presenters that own a rebuildable set of
// dot indicators. InitIndicators hands it one select callback per page.
type IndicatorBuilder interface {
	ResetIndicators(count int, onSelect func(index int))
}

// State is a snapshot of the navigation state.
type State struct {
	Current   int // 1-based
	Total     int
	Animating bool
}
