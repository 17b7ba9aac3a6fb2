package proc

import (
	"fmt"
	"os/exec"
)

// StartDetached starts cmd in its own process group and lets it run on
// after we exit. Stdio is left to the caller; nil means the null device.
func StartDetached(cmd *exec.Cmd) error {
	cmd.SysProcAttr = detachedSysProcAttr()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	return cmd.Process.Release()
}
