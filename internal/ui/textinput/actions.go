package textinput

const source = "textinput"

// Result is the submitted or canceled prompt.
type Result struct {
	Text     string
	Context  any  // passed through from Start
	Canceled bool // Esc pressed
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "textinput.result" }
