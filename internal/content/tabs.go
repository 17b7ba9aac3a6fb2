package content

import (
	"strings"

	"github.com/baaaaaaaka/tmux-status/internal/status"
)

const tabSeparator = "▏"

// TabRow builds the left row: one block per window name in the
// comma-separated list. Empty names are skipped and do not take an index.
func TabRow(ctx *status.Context, windowList string, active int, color string) *status.Row {
	row := status.NewRow()
	idx := 0
	for _, name := range strings.Split(windowList, ",") {
		if name == "" {
			continue
		}
		if idx == active {
			row.Add(activeTab(ctx, name, color))
		} else {
			row.Add(inactiveTab(ctx, idx, active, name))
		}
		idx++
	}
	row.RemoveEmpty()
	return row
}

func activeTab(ctx *status.Context, name, color string) *status.Block {
	return status.NewBlock(
		status.NewSpan(" "+name+" ", ctx).Bold().Fg(Grey0).Bg(color),
	)
}

// Neighbours of the active tab are already visually separated by its
// background, so only the others get a separator glyph.
func inactiveTab(ctx *status.Context, idx, active int, name string) *status.Block {
	block := status.NewBlock()
	if idx > 0 && active != idx && active != idx-1 {
		block.Add(status.NewSpan(tabSeparator, ctx).Fg(Grey6))
		block.Add(status.NewSpan(name+" ", ctx))
	} else {
		block.Add(status.NewSpan(" "+name+" ", ctx))
	}
	return block.OnActivate(status.SelectWindow(idx))
}
