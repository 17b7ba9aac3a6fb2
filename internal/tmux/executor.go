package tmux

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"

	"github.com/baaaaaaaka/tmux-status/internal/config"
	"github.com/baaaaaaaka/tmux-status/internal/logger"
	"github.com/baaaaaaaka/tmux-status/internal/proc"
	"github.com/baaaaaaaka/tmux-status/internal/status"
)

// ErrBusy is returned when another invocation is still moving a window.
var ErrBusy = errors.New("another window move is in progress")

// Executor performs status line actions against tmux.
type Executor struct {
	Settings config.Settings
	LockPath string
	Log      *slog.Logger

	run   func(ctx context.Context, name string, args ...string) error
	start func(name string, args ...string) error
}

func DefaultLockPath() string {
	return filepath.Join(os.TempDir(), "tmux-status-"+strconv.Itoa(os.Getuid())+".lock")
}

func NewExecutor(settings config.Settings, log *slog.Logger) *Executor {
	if log == nil {
		log = logger.Discard()
	}
	return &Executor{
		Settings: settings,
		LockPath: DefaultLockPath(),
		Log:      log,
		run:      runCommand,
		start:    startCommand,
	}
}

// Execute performs a. Selecting a window and opening popups are fire and
// forget. Window moves wait for tmux while holding a lock shared by every
// invocation, because tmux spawns one process per drag event and each of
// them works from its own snapshot of the window list.
func (e *Executor) Execute(ctx context.Context, a status.Action) error {
	switch a.Kind {
	case status.ActionNone:
		return nil
	case status.ActionSelectWindow:
		return e.start("tmux", "select-window", "-t", strconv.Itoa(a.Window))
	case status.ActionMoveWindowBefore:
		return e.moveWindow(ctx, "-b", a.Window)
	case status.ActionMoveWindowAfter:
		return e.moveWindow(ctx, "-a", a.Window)
	case status.ActionOpenSessionSwitcher:
		return e.start("sh", "-c", e.Settings.SessionPopup)
	case status.ActionOpenCalendar:
		return e.start("sh", "-c", e.Settings.CalendarPopup)
	default:
		return fmt.Errorf("unknown action kind %d", a.Kind)
	}
}

func (e *Executor) moveWindow(ctx context.Context, flag string, target int) error {
	lock := flock.New(e.LockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", e.LockPath, err)
	}
	if !locked {
		return ErrBusy
	}
	defer func() { _ = lock.Unlock() }()

	e.Log.Debug("moving window", "flag", flag, "target", target)
	return e.run(ctx, "tmux", "move-window", flag, "-t", strconv.Itoa(target))
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s %v: %w: %s", name, args, err, out)
	}
	return nil
}

func startCommand(name string, args ...string) error {
	return proc.StartDetached(exec.Command(name, args...))
}
