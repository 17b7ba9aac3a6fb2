package content

import "strconv"

const (
	Grey0 = "colour232"
	Grey2 = "colour234"
	Grey5 = "colour237"
	Grey6 = "colour238"

	fallbackColor = "brightblack"
	scratchColor  = "cyan"
	scratchTitle  = "scratch"
)

// rgb256 maps a 6x6x6 color cube coordinate (each 0-5) to its palette index.
func rgb256(r, g, b int) int {
	return 16 + r*36 + g*6 + b
}

func colour(r, g, b int) string {
	return "colour" + strconv.Itoa(rgb256(r, g, b))
}

// SessionColor resolves a session's symbolic color name to a tmux color.
func SessionColor(name, sessionTitle string) string {
	switch name {
	case "red":
		return colour(3, 0, 0)
	case "green":
		return colour(0, 3, 0)
	case "blue":
		return colour(0, 1, 4)
	case "yellow":
		return colour(3, 3, 0)
	case "cyan":
		return colour(0, 3, 3)
	case "magenta", "purple":
		return colour(3, 0, 3)
	}
	if sessionTitle == scratchTitle {
		return scratchColor
	}
	return fallbackColor
}

func DefaultBackground(zoomed bool) string {
	if zoomed {
		return Grey5
	}
	return Grey2
}
