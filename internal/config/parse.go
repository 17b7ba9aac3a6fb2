package config

import "strconv"

// Positional argument slots, in the order tmux passes them.
const (
	argPaneTitle = iota
	argPanePath
	argWindowList
	argWindowIdx
	argReserved
	argSessionTitle
	argSessionColor
	argClientWidth
	argSelectionYStart
	argSelectionYEnd
	argSelectionXStart
	argSelectionXEnd
	argZoomed
	argMouseMode
	argMouseX

	PositionalArgs
)

// Parse builds a Config from positional arguments. It reports false when
// too few values were given; unparseable numbers fall back to zero or to
// NoSelection rather than failing.
func Parse(args []string) (Config, bool) {
	if len(args) < PositionalArgs {
		return Config{}, false
	}

	sel := EmptySelection()
	if args[argSelectionYStart] != "" {
		sel = Selection{
			YStart: parseInt(args[argSelectionYStart], NoSelection),
			YEnd:   parseInt(args[argSelectionYEnd], NoSelection),
			XStart: parseInt(args[argSelectionXStart], NoSelection),
			XEnd:   parseInt(args[argSelectionXEnd], NoSelection),
		}
	}

	return Config{
		PaneTitle:    args[argPaneTitle],
		PanePath:     args[argPanePath],
		WindowList:   args[argWindowList],
		WindowIdx:    parseCount(args[argWindowIdx]),
		SessionTitle: args[argSessionTitle],
		SessionColor: args[argSessionColor],
		ClientWidth:  parseCount(args[argClientWidth]),
		Selection:    sel,
		Zoomed:       parseInt(args[argZoomed], 0) != 0,
		MouseMode:    MouseMode(parseInt(args[argMouseMode], 0)),
		MouseX:       parseCount(args[argMouseX]),
	}, true
}

func parseInt(s string, fallback int) int {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fallback
	}
	return int(n)
}

// parseCount parses a column or index, which can never be negative.
func parseCount(s string) int {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return int(n)
}
