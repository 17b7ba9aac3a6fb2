package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

var gitCommand = func(ctx context.Context, dir string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
}

// LookupBranch returns the short name of the branch checked out in dir.
func LookupBranch(ctx context.Context, dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("missing directory")
	}
	cmd := gitCommand(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git rev-parse in %s: %w", dir, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Branch is LookupBranch with every failure mapped to "".
func Branch(ctx context.Context, dir string) string {
	branch, err := LookupBranch(ctx, dir)
	if err != nil {
		return ""
	}
	return branch
}
