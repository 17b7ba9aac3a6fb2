package tui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/tmux-status/internal/status"
)

var namedColors = map[string]tcell.Color{
	"black":         tcell.PaletteColor(0),
	"red":           tcell.PaletteColor(1),
	"green":         tcell.PaletteColor(2),
	"yellow":        tcell.PaletteColor(3),
	"blue":          tcell.PaletteColor(4),
	"magenta":       tcell.PaletteColor(5),
	"cyan":          tcell.PaletteColor(6),
	"white":         tcell.PaletteColor(7),
	"brightblack":   tcell.PaletteColor(8),
	"brightred":     tcell.PaletteColor(9),
	"brightgreen":   tcell.PaletteColor(10),
	"brightyellow":  tcell.PaletteColor(11),
	"brightblue":    tcell.PaletteColor(12),
	"brightmagenta": tcell.PaletteColor(13),
	"brightcyan":    tcell.PaletteColor(14),
	"brightwhite":   tcell.PaletteColor(15),
}

// ParseColor maps a tmux color name onto a tcell color.
func ParseColor(name string) tcell.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == status.DefaultColor {
		return tcell.ColorDefault
	}
	for _, prefix := range []string{"colour", "color"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			if n, err := strconv.Atoi(rest); err == nil && n >= 0 && n < 256 {
				return tcell.PaletteColor(n)
			}
		}
	}
	if c, ok := namedColors[name]; ok {
		return c
	}
	return tcell.GetColor(name)
}

func applyDirective(style tcell.Style, body string) tcell.Style {
	for _, item := range strings.Split(body, ",") {
		item = strings.TrimSpace(item)
		switch {
		case item == "":
		case strings.HasPrefix(item, "fg="):
			style = style.Foreground(ParseColor(item[len("fg="):]))
		case strings.HasPrefix(item, "bg="):
			style = style.Background(ParseColor(item[len("bg="):]))
		case item == "bold":
			style = style.Bold(true)
		case item == "nobold":
			style = style.Bold(false)
		case item == "reverse":
			style = style.Reverse(true)
		case item == "noreverse":
			style = style.Reverse(false)
		}
	}
	return style
}

// DrawLine interprets a status line directive stream and draws it on row y.
// It returns the number of columns the text occupied.
func DrawLine(screen tcell.Screen, y int, line string) int {
	style := tcell.StyleDefault
	x := 0
	for len(line) > 0 {
		if strings.HasPrefix(line, "#[") {
			end := strings.IndexByte(line, ']')
			if end >= 0 {
				style = applyDirective(style, line[2:end])
				line = line[end+1:]
				continue
			}
		}
		next := strings.Index(line[1:], "#[")
		text := line
		if next >= 0 {
			text = line[:next+1]
		}
		x += writeText(screen, x, y, text, style)
		line = line[len(text):]
	}
	return x
}

func writeText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	offset := 0
	for _, ch := range text {
		width := status.DisplayWidth(string(ch))
		if width == 0 {
			continue
		}
		screen.SetContent(x+offset, y, ch, nil, style)
		offset += width
	}
	return offset
}
