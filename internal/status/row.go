package status

import "strings"

// Row is one side of the status line. Blocks are atomic: truncation only
// ever removes whole blocks.
type Row struct {
	blocks []*Block
}

func NewRow(blocks ...*Block) *Row {
	return &Row{blocks: blocks}
}

func (r *Row) Add(b *Block) {
	r.blocks = append(r.blocks, b)
}

func (r *Row) Blocks() []*Block { return r.blocks }

func (r *Row) Len() int {
	total := 0
	for _, b := range r.blocks {
		total += b.Len()
	}
	return total
}

func (r *Row) Clear() {
	r.blocks = nil
}

func (r *Row) RemoveEmpty() {
	kept := r.blocks[:0]
	for _, b := range r.blocks {
		if b.Len() > 0 {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(r.blocks); i++ {
		r.blocks[i] = nil
	}
	r.blocks = kept
}

// Shorten drops blocks from the back (or front) until the row fits in
// target columns. The result may be narrower than target.
func (r *Row) Shorten(target int, fromBack bool) {
	for len(r.blocks) > 0 && r.Len() > target {
		if fromBack {
			r.blocks[len(r.blocks)-1] = nil
			r.blocks = r.blocks[:len(r.blocks)-1]
		} else {
			r.blocks = r.blocks[1:]
		}
	}
}

// Activate finds the block covering column pos and returns its action.
// The bool reports whether any block covered pos.
func (r *Row) Activate(pos int) (Action, bool) {
	if pos < 0 {
		return NoAction, false
	}
	offset := 0
	for _, b := range r.blocks {
		end := offset + b.Len()
		if pos >= offset && pos < end {
			return b.Activate(), true
		}
		offset = end
	}
	return NoAction, false
}

func (r *Row) Print(out *strings.Builder, ctx *Context) {
	for _, b := range r.blocks {
		b.Print(out, ctx)
	}
}
