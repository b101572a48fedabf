package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "flip", "scroll", "media"
}

// Bindings contains all key bindings, used for dispatch and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleMode, []string{"tab"}, "Switch flip/scroll view", "global"},
	{ActionFullscreen, []string{"f"}, "Toggle fullscreen", "global"},
	{ActionReload, []string{"ctrl+r"}, "Reload issue", "global"},

	// Flip view
	{ActionNextPage, []string{"right", "l", "pgdown", " "}, "Next page", "flip"},
	{ActionPrevPage, []string{"left", "h", "pgup"}, "Previous page", "flip"},
	{ActionFirstPage, []string{"home", "g"}, "First page", "flip"},
	{ActionLastPage, []string{"end", "G"}, "Last page", "flip"},
	{ActionGotoPage, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Go to page", "flip"},

	// Scroll view
	{ActionScrollDown, []string{"down", "j"}, "Scroll down", "scroll"},
	{ActionScrollUp, []string{"up", "k"}, "Scroll up", "scroll"},
	{ActionNextSection, []string{"]", "n"}, "Next section", "scroll"},
	{ActionPrevSection, []string{"[", "p"}, "Previous section", "scroll"},
	{ActionSectionSelect, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Jump to section", "scroll"},

	// Media
	{ActionAttach, []string{"a"}, "Attach PDF or audio to page", "media"},
	{ActionRemoveAttach, []string{"x"}, "Remove last attachment", "media"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
