package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/baaaaaaaka/tmux-status/internal/config"
	"github.com/baaaaaaaka/tmux-status/internal/content"
	"github.com/baaaaaaaka/tmux-status/internal/logger"
	"github.com/baaaaaaaka/tmux-status/internal/status"
	"github.com/baaaaaaaka/tmux-status/internal/tmux"
	"github.com/baaaaaaaka/tmux-status/internal/tui"
	"github.com/baaaaaaaka/tmux-status/internal/vcs"
)

// popupSession is the session tmux uses for popups; its status line stays
// empty.
const popupSession = "popup"

const branchTimeout = 2 * time.Second

type executor interface {
	Execute(ctx context.Context, a status.Action) error
}

var (
	lookupBranch = vcs.Branch
	now          = time.Now
	newExecutor  = func(s config.Settings, log *slog.Logger) executor { return tmux.NewExecutor(s, log) }
	runPreview   = tui.Preview
)

type layout struct {
	ctx   *status.Context
	left  *status.Row
	right *status.Row
}

func buildLayout(cfg config.Config, branch string, at time.Time) layout {
	ctx := status.NewContext(content.DefaultBackground(cfg.Zoomed))
	color := content.SessionColor(cfg.SessionColor, cfg.SessionTitle)

	left := content.TabRow(ctx, cfg.WindowList, cfg.WindowIdx, color)
	right := content.RightRow(ctx, content.RightInput{
		PaneTitle:    cfg.PaneTitle,
		PanePath:     cfg.PanePath,
		Branch:       branch,
		SessionTitle: cfg.SessionTitle,
		Selection:    cfg.Selection,
		Color:        color,
		Now:          at,
	})
	return layout{ctx: ctx, left: left, right: right}
}

func runStatus(cmd *cobra.Command, opts *rootOptions, args []string) error {
	settings, settingsErr := loadSettings(opts)

	logPath := opts.logFile
	if logPath == "" {
		logPath = settings.LogPath
	}
	log, closeLog, logErr := logger.New(logPath)
	defer func() { _ = closeLog() }()
	if logErr != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "tmux-status: %v\n", logErr)
	}
	if settingsErr != nil {
		log.Warn("ignoring settings file", "err", settingsErr)
	}

	cfg, ok := config.Parse(args)
	if !ok {
		log.Debug("not enough arguments", "got", len(args), "want", config.PositionalArgs)
		return nil
	}
	if cfg.SessionTitle == popupSession {
		return nil
	}
	if cfg.ClientWidth == 0 {
		// Only happens when run by hand; tmux always passes a width.
		cfg.ClientWidth = terminalWidth(0)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	branch := branchFor(ctx, cfg.PanePath)

	if opts.preview {
		return previewStatus(ctx, cfg, branch)
	}

	l := buildLayout(cfg, branch, now())
	switch cfg.MouseMode {
	case config.MouseClick, config.MouseDrag:
		status.Fit(l.left, l.right, cfg.ClientWidth)
		action := pointerAction(cfg, l)
		log.Debug("pointer event", "mode", cfg.MouseMode, "x", cfg.MouseX, "action", action.String())
		if action.IsNone() {
			return nil
		}
		if err := newExecutor(settings, log).Execute(ctx, action); err != nil {
			log.Warn("action failed", "action", action.String(), "err", err)
		}
		return nil
	default:
		_, _ = io.WriteString(cmd.OutOrStdout(), status.Render(l.ctx, l.left, l.right, cfg.ClientWidth))
		return nil
	}
}

// pointerAction resolves the pointer event against rows that have already
// been fitted to the client width.
func pointerAction(cfg config.Config, l layout) status.Action {
	if cfg.MouseMode == config.MouseDrag {
		return status.Drag(l.left, cfg.WindowIdx, cfg.MouseX)
	}
	action, _ := status.Click(l.left, l.right, cfg.MouseX, cfg.ClientWidth)
	return action
}

func branchFor(ctx context.Context, path string) string {
	ctx, cancel := context.WithTimeout(ctx, branchTimeout)
	defer cancel()
	return lookupBranch(ctx, path)
}

func loadSettings(opts *rootOptions) (config.Settings, error) {
	path := opts.envFile
	if path == "" {
		p, err := config.DefaultSettingsPath()
		if err != nil {
			return config.DefaultSettings(), err
		}
		path = p
	}
	return config.LoadSettings(path, os.Getenv)
}

func previewStatus(ctx context.Context, cfg config.Config, branch string) error {
	return runPreview(ctx, tui.Options{
		Build: func(width int) tui.Frame {
			l := buildLayout(cfg, branch, now())
			line := status.Render(l.ctx, l.left, l.right, width)
			return tui.Frame{Line: line, Left: l.left, Right: l.right, Width: width, Active: cfg.WindowIdx}
		},
	})
}

func terminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}
