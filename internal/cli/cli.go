package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

const longHelp = `Render a clickable tmux status line from positional tmux formats.

Mouse mode 1 performs the click at mouse-x, mode 2 reorders the active window
for a drag to mouse-x, anything else prints the line. Missing arguments print
nothing.`

type rootOptions struct {
	envFile string
	logFile string
	preview bool
}

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tmux-status [flags] -- <pane-title> <pane-path> <windows> <window-idx> <reserved> <session> <color> <width> <sel-y-start> <sel-y-end> <sel-x-start> <sel-x-end> <zoomed> <mouse-mode> <mouse-x>",
		Short:         "Render a clickable tmux status line",
		Long:          longHelp,
		SilenceErrors: false,
		SilenceUsage:  true,
		Version:       buildVersion(),
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Settings file (default: $XDG_CONFIG_HOME/tmux/tmux-status.env)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Append debug logs to this file (default: $TMUX_STATUS_LOG)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Show the line in an interactive terminal preview instead of printing it")

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
