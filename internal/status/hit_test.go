package status

import (
	"strings"
	"testing"
)

func TestClickDispatchesLeftThenRight(t *testing.T) {
	ctx := NewContext("colour234")
	left := NewRow(
		NewBlock(NewSpan(" a ", ctx)).OnActivate(SelectWindow(0)),
		NewBlock(NewSpan(" b ", ctx).Bold()),
	)
	right := NewRow(
		NewBlock(NewSpan("title", ctx), NewSpan(" ▏", ctx)),
		NewBlock(NewSpan(" 12:00 ", ctx)).OnActivate(OpenCalendar()),
	)
	const width = 30
	if padding := Fit(left, right, width); padding != 10 {
		t.Fatalf("padding=%d", padding)
	}

	cases := []struct {
		x      int
		want   Action
		wantOK bool
	}{
		{0, SelectWindow(0), true},
		{2, SelectWindow(0), true},
		{4, NoAction, true},
		{6, NoAction, false},
		{15, NoAction, false},
		{16, NoAction, true},
		{22, NoAction, true},
		{23, OpenCalendar(), true},
		{29, OpenCalendar(), true},
		{30, NoAction, false},
	}
	for _, tc := range cases {
		got, ok := Click(left, right, tc.x, width)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("x=%d: got %v,%v want %v,%v", tc.x, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestClickAgreesWithRenderedColumns(t *testing.T) {
	ctx := NewContext("colour234")
	left := NewRow(NewBlock(NewSpan(" 日本 ", ctx)).OnActivate(SelectWindow(3)))
	right := NewRow(NewBlock(NewSpan(" z ", ctx)).OnActivate(OpenSessionSwitcher()))
	const width = 12

	line := Render(ctx, left, right, width)
	plain := strings.NewReplacer("#[bg=colour234]", "").Replace(line)
	if DisplayWidth(plain) != width {
		t.Fatalf("rendered width %d: %q", DisplayWidth(plain), plain)
	}
	if got, _ := Click(left, right, 5, width); got != SelectWindow(3) {
		t.Fatalf("x=5 got %v", got)
	}
	if _, ok := Click(left, right, 6, width); ok {
		t.Fatalf("x=6 should be padding")
	}
	if got, _ := Click(left, right, 9, width); got != OpenSessionSwitcher() {
		t.Fatalf("x=9 got %v", got)
	}
}

func dragRow(ctx *Context, lens ...int) *Row {
	row := NewRow()
	for i, n := range lens {
		row.Add(NewBlock(NewSpan(strings.Repeat("w", n), ctx)).OnActivate(SelectWindow(i)))
	}
	return row
}

func TestDragRightward(t *testing.T) {
	ctx := NewContext("")
	row := dragRow(ctx, 4, 6, 6)

	cases := []struct {
		x    int
		want Action
	}{
		{2, NoAction},
		{5, NoAction},
		{9, MoveWindowAfter(1)},
		{10, MoveWindowAfter(2)},
		{15, MoveWindowAfter(2)},
		{16, NoAction},
	}
	for _, tc := range cases {
		if got := Drag(row, 0, tc.x); got != tc.want {
			t.Fatalf("x=%d: got %v want %v", tc.x, got, tc.want)
		}
	}
}

func TestDragLeftwardHysteresis(t *testing.T) {
	ctx := NewContext("")
	row := dragRow(ctx, 6, 2)

	cases := []struct {
		x    int
		want Action
	}{
		{0, MoveWindowBefore(0)},
		{1, MoveWindowBefore(0)},
		{2, NoAction},
		{5, NoAction},
		{6, NoAction},
	}
	for _, tc := range cases {
		if got := Drag(row, 1, tc.x); got != tc.want {
			t.Fatalf("x=%d: got %v want %v", tc.x, got, tc.want)
		}
	}
}

func TestDragSourceOutOfRange(t *testing.T) {
	ctx := NewContext("")
	row := dragRow(ctx, 3, 3)
	if got := Drag(row, 2, 1); !got.IsNone() {
		t.Fatalf("got %v", got)
	}
	if got := Drag(row, -1, 1); !got.IsNone() {
		t.Fatalf("got %v", got)
	}
	if got := Drag(NewRow(), 0, 0); !got.IsNone() {
		t.Fatalf("got %v", got)
	}
}

func TestActionString(t *testing.T) {
	cases := map[Action]string{
		NoAction:              "none",
		SelectWindow(2):       "select-window 2",
		MoveWindowBefore(1):   "move-window-before 1",
		MoveWindowAfter(4):    "move-window-after 4",
		OpenSessionSwitcher(): "open-session-switcher",
		OpenCalendar():        "open-calendar",
	}
	for action, want := range cases {
		if got := action.String(); got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	}
}
