package status

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultColor = "default"

// widthCondition is pinned so that column math does not follow the
// locale of whichever process tmux happens to spawn us from.
var widthCondition = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	return widthCondition.StringWidth(s)
}

// Context tracks the colors most recently emitted to the terminal so that
// spans only emit directives for attributes that actually change. It must be
// threaded through one render pass in print order.
type Context struct {
	CurrentFg string
	CurrentBg string
	DefaultFg string
	DefaultBg string
}

func NewContext(defaultBg string) *Context {
	if defaultBg == "" {
		defaultBg = DefaultColor
	}
	return &Context{
		CurrentFg: DefaultColor,
		CurrentBg: DefaultColor,
		DefaultFg: DefaultColor,
		DefaultBg: defaultBg,
	}
}

// Span is an immutable piece of styled text. Builder methods return copies.
type Span struct {
	text  string
	width int
	attr  string
	fg    string
	bg    string
}

func NewSpan(text string, ctx *Context) Span {
	return Span{
		text:  text,
		width: DisplayWidth(text),
		fg:    ctx.DefaultFg,
		bg:    ctx.DefaultBg,
	}
}

func (s Span) Bold() Span {
	s.attr = "bold"
	return s
}

func (s Span) Fg(color string) Span {
	s.fg = color
	return s
}

func (s Span) Bg(color string) Span {
	s.bg = color
	return s
}

func (s Span) Text() string { return s.text }
func (s Span) Width() int   { return s.width }

// Directives returns the open and close directives needed to print s after
// whatever ctx says is currently on screen.
func (s Span) Directives(ctx *Context) (string, string) {
	if ctx.CurrentFg == s.fg && ctx.CurrentBg == s.bg {
		if s.attr == "" {
			return "", ""
		}
		return "#[" + s.attr + "]", "#[no" + s.attr + "]"
	}

	parts := make([]string, 0, 3)
	if ctx.CurrentFg != s.fg {
		parts = append(parts, "fg="+s.fg)
	}
	if ctx.CurrentBg != s.bg {
		parts = append(parts, "bg="+s.bg)
	}
	closer := ""
	if s.attr != "" {
		parts = append(parts, s.attr)
		closer = "#[no" + s.attr + "]"
	}
	return "#[" + strings.Join(parts, ",") + "]", closer
}

func (s Span) Print(out *strings.Builder, ctx *Context) {
	open, closer := s.Directives(ctx)
	out.WriteString(open)
	out.WriteString(s.text)
	out.WriteString(closer)

	ctx.CurrentFg = s.fg
	ctx.CurrentBg = s.bg
}
