package helpbindings

const source = "helpbindings"

// Close asks the app to hide the help popup.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "helpbindings.close" }
