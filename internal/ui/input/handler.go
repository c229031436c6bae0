package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tablesel/internal/ui/input/types"
)

// Handler turns key presses into actions
type Handler struct {
	keys KeyMap
}

// New creates a handler with the default key map
func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the active key map
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey maps a key message to actions. Unbound keys yield none.
func (h *Handler) HandleKey(msg tea.KeyMsg) []types.Action {
	switch {
	case key.Matches(msg, h.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}
	case key.Matches(msg, h.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}
	case key.Matches(msg, h.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}
	case key.Matches(msg, h.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}
	case key.Matches(msg, h.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}
	case key.Matches(msg, h.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}
	case key.Matches(msg, h.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}
	case key.Matches(msg, h.keys.ToggleRow):
		return []types.Action{types.ToggleRowAction{}}
	case key.Matches(msg, h.keys.ToggleAll):
		return []types.Action{types.ToggleAllAction{}}
	case key.Matches(msg, h.keys.Relayout):
		return []types.Action{types.RelayoutAction{}}
	case key.Matches(msg, h.keys.ShowSelection):
		return []types.Action{types.ShowSelectionAction{}}
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}
	}
	return nil
}
