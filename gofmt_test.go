package repotest

import (
	"bytes"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestGofmtClean(t *testing.T) {
	repoRoot, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if _, err := exec.LookPath("gofmt"); err != nil {
		t.Skip("gofmt not in PATH")
	}

	cmd := exec.Command("gofmt", "-l", "cmd", "internal")
	cmd.Dir = repoRoot
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		t.Fatalf("gofmt -l failed: %v: %s", err, strings.TrimSpace(output.String()))
	}

	if bad := strings.TrimSpace(output.String()); bad != "" {
		t.Fatalf("gofmt required for:\n%s", bad)
	}
}

// Stdout is the status line itself; only the cli package may touch it.
func TestOnlyCLIUsesStdout(t *testing.T) {
	var offenders []string
	err := filepath.WalkDir("internal", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == filepath.Join("internal", "cli") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.Contains(b, []byte("os.Stdout")) || bytes.Contains(b, []byte("fmt.Print")) {
			offenders = append(offenders, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(offenders) > 0 {
		t.Fatalf("stdout written outside internal/cli:\n%s", strings.Join(offenders, "\n"))
	}
}
