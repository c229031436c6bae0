package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleRowAction struct{}

func (a ToggleRowAction) Type() string { return "toggle_row" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

type RelayoutAction struct{}

func (a RelayoutAction) Type() string { return "relayout" }

// Pager actions
type ShowSelectionAction struct{}

func (a ShowSelectionAction) Type() string { return "show_selection" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
