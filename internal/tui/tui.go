package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/tmux-status/internal/status"
)

var errQuit = errors.New("quit")

var newScreen = tcell.NewScreen

// Frame is one rendered status line together with the fitted rows it was
// rendered from.
type Frame struct {
	Line   string
	Left   *status.Row
	Right  *status.Row
	Width  int
	Active int
}

type Options struct {
	// Build renders the status line for a terminal width columns wide.
	Build func(width int) Frame
	// OnAction, if set, is called for every action the pointer produces.
	OnAction func(status.Action)
}

type uiEvent struct {
	when time.Time
	kind string
}

func (e *uiEvent) When() time.Time { return e.when }

type uiState struct {
	frame    Frame
	dragging bool
	last     status.Action
	lastHit  bool
	events   int
}

// Preview shows the status line on the bottom row of the terminal and
// reports what clicking or dragging on it would do, without doing it.
func Preview(ctx context.Context, opts Options) error {
	if opts.Build == nil {
		return errors.New("Build is required")
	}

	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	go func() {
		<-ctx.Done()
		screen.PostEvent(&uiEvent{when: time.Now(), kind: "quit"})
	}()

	state := &uiState{}
	for {
		draw(screen, state, opts)
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch tev := ev.(type) {
		case *uiEvent:
			if tev.kind == "quit" {
				return ctx.Err()
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if err := handleKey(tev); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		case *tcell.EventMouse:
			handleMouse(screen, state, opts, tev)
		}
	}
}

func handleKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return errQuit
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return errQuit
		}
	}
	return nil
}

func handleMouse(screen tcell.Screen, state *uiState, opts Options, ev *tcell.EventMouse) {
	_, h := screen.Size()
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 == 0 {
		state.dragging = false
		return
	}
	if y != h-1 {
		return
	}

	if !state.dragging {
		state.dragging = true
		action, hit := status.Click(state.frame.Left, state.frame.Right, x, state.frame.Width)
		state.record(action, hit, opts)
		return
	}
	// Drags below the reorder threshold keep the previous report.
	if action := status.Drag(state.frame.Left, state.frame.Active, x); !action.IsNone() {
		state.record(action, true, opts)
	}
}

func (s *uiState) record(action status.Action, hit bool, opts Options) {
	s.last = action
	s.lastHit = hit
	s.events++
	if opts.OnAction != nil && !action.IsNone() {
		opts.OnAction(action)
	}
}

func draw(screen tcell.Screen, state *uiState, opts Options) {
	w, h := screen.Size()
	screen.Clear()
	if w <= 0 || h <= 0 {
		screen.Show()
		return
	}

	state.frame = opts.Build(w)
	DrawLine(screen, h-1, state.frame.Line)

	if h >= 2 {
		writeText(screen, 0, h-2, statusText(state), tcell.StyleDefault.Reverse(true))
	}
	if h >= 3 {
		writeText(screen, 0, 0, "click or drag the bottom line, q to quit", tcell.StyleDefault)
	}
	screen.Show()
}

func statusText(state *uiState) string {
	if state.events == 0 {
		return "no pointer events yet"
	}
	if !state.lastHit {
		return "last: no block"
	}
	return "last: " + state.last.String()
}
