package types

// Navigation actions
type NavigateAction struct {
	Direction string // "prev", "next", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// GoToAction jumps to a dot
type GoToAction struct {
	Index int
}

func (a GoToAction) Type() string { return "goto" }

type CancelGestureAction struct{}

func (a CancelGestureAction) Type() string { return "cancel_gesture" }

type OpenSlideAction struct{}

func (a OpenSlideAction) Type() string { return "open_slide" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ShowHelpPagerAction struct{}

func (a ShowHelpPagerAction) Type() string { return "show_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
