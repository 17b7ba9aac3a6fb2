package status

import "strconv"

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelectWindow
	ActionMoveWindowBefore
	ActionMoveWindowAfter
	ActionOpenSessionSwitcher
	ActionOpenCalendar
)

// Action is what activating a block asks the host to do. Window is only
// meaningful for the window kinds.
type Action struct {
	Kind   ActionKind
	Window int
}

var NoAction = Action{}

func SelectWindow(idx int) Action     { return Action{Kind: ActionSelectWindow, Window: idx} }
func MoveWindowBefore(idx int) Action { return Action{Kind: ActionMoveWindowBefore, Window: idx} }
func MoveWindowAfter(idx int) Action  { return Action{Kind: ActionMoveWindowAfter, Window: idx} }
func OpenSessionSwitcher() Action     { return Action{Kind: ActionOpenSessionSwitcher} }
func OpenCalendar() Action            { return Action{Kind: ActionOpenCalendar} }

func (a Action) IsNone() bool { return a.Kind == ActionNone }

func (a Action) String() string {
	switch a.Kind {
	case ActionSelectWindow:
		return "select-window " + strconv.Itoa(a.Window)
	case ActionMoveWindowBefore:
		return "move-window-before " + strconv.Itoa(a.Window)
	case ActionMoveWindowAfter:
		return "move-window-after " + strconv.Itoa(a.Window)
	case ActionOpenSessionSwitcher:
		return "open-session-switcher"
	case ActionOpenCalendar:
		return "open-calendar"
	default:
		return "none"
	}
}
