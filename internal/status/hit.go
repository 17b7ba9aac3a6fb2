package status

// Click maps column x of a line that is width columns wide onto the block
// drawn there. Rows must already have been through Fit.
func Click(left, right *Row, x, width int) (Action, bool) {
	if action, ok := left.Activate(x); ok {
		return action, true
	}
	rightOffset := width - right.Len()
	if rightOffset < 0 {
		rightOffset = 0
	}
	if x < rightOffset {
		return NoAction, false
	}
	return right.Activate(x - rightOffset)
}

// Drag decides whether dragging block source of the left row to column x
// should move it before or after the block under the cursor. The source
// block keeps its own slot while scanning, and the move only triggers once
// the cursor is a full target width past the boundary, so a cursor parked
// on an edge does not flip windows back and forth.
func Drag(left *Row, source, x int) Action {
	blocks := left.Blocks()
	if source < 0 || source >= len(blocks) || x < 0 {
		return NoAction
	}

	target := -1
	targetOffset := 0
	offset := 0
	for idx, b := range blocks {
		if idx == source {
			offset += b.Len()
			continue
		}
		end := offset + b.Len()
		if x >= offset && x < end {
			target = idx
			targetOffset = offset
			break
		}
		offset = end
	}
	if target < 0 {
		return NoAction
	}

	sourceOffset := 0
	for _, b := range blocks[:source] {
		sourceOffset += b.Len()
	}
	sourceLen := blocks[source].Len()
	targetLen := blocks[target].Len()

	if targetOffset < sourceOffset {
		if x < sourceOffset+sourceLen-targetLen {
			return MoveWindowBefore(target)
		}
		return NoAction
	}
	if x >= sourceOffset+targetLen {
		return MoveWindowAfter(target)
	}
	return NoAction
}
