package status

import "strings"

// Block groups spans that share one activation action.
type Block struct {
	spans  []Span
	action Action
}

func NewBlock(spans ...Span) *Block {
	return &Block{spans: spans}
}

func (b *Block) Add(span Span) {
	b.spans = append(b.spans, span)
}

// OnActivate binds the action returned by Activate.
func (b *Block) OnActivate(action Action) *Block {
	b.action = action
	return b
}

func (b *Block) Spans() []Span { return b.spans }

func (b *Block) Len() int {
	total := 0
	for _, span := range b.spans {
		total += span.Width()
	}
	return total
}

func (b *Block) Activate() Action {
	return b.action
}

func (b *Block) Print(out *strings.Builder, ctx *Context) {
	for _, span := range b.spans {
		span.Print(out, ctx)
	}
}
