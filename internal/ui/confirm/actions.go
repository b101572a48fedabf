package confirm

const source = "confirm"

// Result is the answer to a confirmation.
type Result struct {
	Confirmed bool
	Context   any // passed through from Show
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "confirm.result" }
