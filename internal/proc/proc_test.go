//go:build !windows

package proc

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func TestStartDetachedRunsChild(t *testing.T) {
	out := filepath.Join(t.TempDir(), "marker")
	cmd := exec.Command("sh", "-c", `echo ok > "$1"`, "sh", out)

	if err := StartDetached(cmd); err != nil {
		t.Fatalf("StartDetached: %v", err)
	}
	if cmd.SysProcAttr == nil || !cmd.SysProcAttr.Setpgid {
		t.Fatalf("expected Setpgid to be set")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		b, err := os.ReadFile(out)
		if err == nil && string(b) == "ok\n" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("detached child never wrote %s", out)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestStartDetachedMissingBinary(t *testing.T) {
	cmd := exec.Command(filepath.Join(t.TempDir(), "missing"))
	if err := StartDetached(cmd); err == nil {
		t.Fatalf("expected error for missing binary")
	}
}
