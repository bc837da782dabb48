package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ezslider/internal/ui/input/types"
)

// Handler translates key presses into actions
type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the active key map
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey processes a key message and returns the resulting actions
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	switch {
	case key.Matches(msg, h.keys.Force):
		return []types.Action{types.QuitAction{Force: true}}
	case key.Matches(msg, h.keys.Cancel):
		if ctx.Dragging() {
			return []types.Action{types.CancelGestureAction{}}
		}
		return nil
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}
	case key.Matches(msg, h.keys.Prev):
		return []types.Action{types.NavigateAction{Direction: "prev"}}
	case key.Matches(msg, h.keys.Next):
		return []types.Action{types.NavigateAction{Direction: "next"}}
	case key.Matches(msg, h.keys.First):
		return []types.Action{types.NavigateAction{Direction: "first"}}
	case key.Matches(msg, h.keys.Last):
		return []types.Action{types.NavigateAction{Direction: "last"}}
	case key.Matches(msg, h.keys.Dot):
		dot := int(msg.String()[0] - '1')
		if dot >= ctx.DotCount() {
			return nil
		}
		return []types.Action{types.GoToAction{Index: dot}}
	case key.Matches(msg, h.keys.Open):
		return []types.Action{types.OpenSlideAction{}}
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}
	case key.Matches(msg, h.keys.Pager):
		return []types.Action{types.ShowHelpPagerAction{}}
	}
	return nil
}
