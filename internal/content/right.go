package content

import (
	"strconv"
	"strings"
	"time"

	"github.com/baaaaaaaka/tmux-status/internal/config"
	"github.com/baaaaaaaka/tmux-status/internal/status"
)

const (
	BranchIcon      = "\ue0a0"
	UnknownPathIcon = "???"

	clockLayout = "15:04 02-Jan-06"
)

type RightInput struct {
	PaneTitle    string
	PanePath     string
	Branch       string
	SessionTitle string
	Selection    config.Selection
	Color        string
	Now          time.Time
}

// RightRow builds the right row: pane title, directory, branch, session or
// selection size, and the clock.
func RightRow(ctx *status.Context, in RightInput) *status.Row {
	row := status.NewRow()
	row.Add(paneTitleBlock(ctx, in.PaneTitle))
	row.Add(pathBlock(ctx, in.PanePath))
	if in.Branch != "" {
		row.Add(branchBlock(ctx, in.Branch))
	}
	row.Add(sessionBlock(ctx, in.SessionTitle, in.Selection, in.Color))
	row.Add(clockBlock(ctx, in.Now))
	row.RemoveEmpty()
	return row
}

func paneTitleBlock(ctx *status.Context, title string) *status.Block {
	return status.NewBlock(
		status.NewSpan(title, ctx),
		status.NewSpan(" "+tabSeparator, ctx).Fg(Grey6),
	)
}

func pathBlock(ctx *status.Context, path string) *status.Block {
	name, ok := PathLabel(path)
	if !ok {
		return status.NewBlock(status.NewSpan(UnknownPathIcon, ctx).Fg("red"))
	}
	return status.NewBlock(
		status.NewSpan(name, ctx),
		status.NewSpan(" ", ctx),
	)
}

// PathLabel returns the last component of path, or false when there is
// none worth showing.
func PathLabel(path string) (string, bool) {
	if path == "/" {
		return "/", true
	}
	last := ""
	for _, part := range strings.Split(path, "/") {
		if part == "" || part == "." {
			continue
		}
		last = part
	}
	if last == "" || last == ".." {
		return "", false
	}
	return last, true
}

func branchBlock(ctx *status.Context, branch string) *status.Block {
	return status.NewBlock(
		status.NewSpan(tabSeparator, ctx).Fg(Grey6),
		status.NewSpan(BranchIcon+" "+branch+" ", ctx),
	)
}

func sessionBlock(ctx *status.Context, title string, sel config.Selection, color string) *status.Block {
	var action status.Action
	label := title
	if rows, ok := sel.Rows(); ok {
		label = strconv.Itoa(rows) + " rows"
	} else if cols, ok := sel.Cols(); ok {
		label = strconv.Itoa(cols) + " col"
		if cols != 1 {
			label += "s"
		}
	} else {
		action = status.OpenSessionSwitcher()
	}

	return status.NewBlock(
		status.NewSpan(" "+label+" ", ctx).Fg(Grey0).Bg(color).Bold(),
	).OnActivate(action)
}

func clockBlock(ctx *status.Context, now time.Time) *status.Block {
	return status.NewBlock(
		status.NewSpan(" "+now.Format(clockLayout)+" ", ctx),
	).OnActivate(status.OpenCalendar())
}
