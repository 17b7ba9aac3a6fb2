package status

import "strings"

// MinGap is the minimum number of blank columns kept between the left and
// right rows when both are shown.
const MinGap = 3

// Fit trims left and right so that together they fit in width columns and
// returns the padding to print between them. The left row always wins; the
// right row loses its leading blocks first so the rightmost ones stay put.
func Fit(left, right *Row, width int) int {
	if width < 0 {
		width = 0
	}

	leftLen := left.Len()
	if leftLen >= width {
		right.Clear()
		left.Shorten(width, true)
		return 0
	}

	remaining := width - leftLen
	rightLen := right.Len()
	if remaining < rightLen+MinGap {
		right.Shorten(width-leftLen-MinGap, false)
		return width - leftLen - right.Len()
	}
	return remaining - rightLen
}

// Render fits both rows into width and returns the full directive stream
// for the line.
func Render(ctx *Context, left, right *Row, width int) string {
	padding := Fit(left, right, width)

	var out strings.Builder
	out.WriteString("#[bg=" + ctx.DefaultBg + "]")
	ctx.CurrentBg = ctx.DefaultBg

	left.Print(&out, ctx)

	out.WriteString("#[bg=" + ctx.DefaultBg + "]")
	out.WriteString(strings.Repeat(" ", padding))
	ctx.CurrentBg = ctx.DefaultBg

	right.Print(&out, ctx)
	return out.String()
}
