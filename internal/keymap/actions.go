// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionHelp       Action = "help"
	ActionToggleMode Action = "toggle_mode"
	ActionFullscreen Action = "fullscreen"
	ActionReload     Action = "reload"

	// Page flipping
	ActionNextPage  Action = "next_page"
	ActionPrevPage  Action = "prev_page"
	ActionFirstPage Action = "first_page"
	ActionLastPage  Action = "last_page"
	ActionGotoPage  Action = "goto_page" // 1-9 jump to page

	// Scroll view
	ActionScrollDown    Action = "scroll_down"
	ActionScrollUp      Action = "scroll_up"
	ActionNextSection   Action = "next_section"
	ActionPrevSection   Action = "prev_section"
	ActionSectionSelect Action = "section_select" // 1-9 jump to section

	// Media embeds
	ActionAttach       Action = "attach"
	ActionRemoveAttach Action = "remove_attach"
)
