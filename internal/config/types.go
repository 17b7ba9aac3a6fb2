package config

// NoSelection marks an absent selection bound.
const NoSelection = -1

type MouseMode int

const (
	MouseNone MouseMode = iota
	MouseClick
	MouseDrag
)

type Selection struct {
	YStart int
	YEnd   int
	XStart int
	XEnd   int
}

func EmptySelection() Selection {
	return Selection{YStart: NoSelection, YEnd: NoSelection, XStart: NoSelection, XEnd: NoSelection}
}

// Rows reports the number of rows spanned when the selection covers more
// than one row.
func (s Selection) Rows() (int, bool) {
	if s.YStart == s.YEnd {
		return 0, false
	}
	return span(s.YStart, s.YEnd), true
}

// Cols reports the number of columns of a single-row selection.
func (s Selection) Cols() (int, bool) {
	if s.XStart == NoSelection {
		return 0, false
	}
	return span(s.XStart, s.XEnd), true
}

func span(a, b int) int {
	if a > b {
		return a - b + 1
	}
	return b - a + 1
}

// Config is one invocation's worth of tmux state.
type Config struct {
	PaneTitle    string
	PanePath     string
	WindowList   string
	WindowIdx    int
	SessionTitle string
	SessionColor string
	ClientWidth  int
	Selection    Selection
	Zoomed       bool
	MouseMode    MouseMode
	MouseX       int
}
