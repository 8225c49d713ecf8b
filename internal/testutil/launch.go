package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// BuildBinary compiles the switcher from the module root into a temp dir.
func BuildBinary(t *testing.T) string {
	t.Helper()
	RequireTmux(t)
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "tmux-tab-switcher")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("skipping: failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// LauncherScript returns a shell script that runs bin against socket inside a
// tmux pane, records its exit status in exitPath and then keeps the pane
// open. Only stderr is discarded; the UI draws to the pane's terminal.
func LauncherScript(bin, socket, logPath, exitPath string) string {
	return fmt.Sprintf("#!/bin/sh\n%q -socket %q -log-file %q 2>/dev/null\nprintf '%%s' $? > %q\nsleep 300\n",
		bin, socket, logPath, exitPath)
}

// WaitForPane polls target until check accepts the captured contents. A
// non-zero code written to exitPath aborts the wait early.
func WaitForPane(t *testing.T, ctx context.Context, socket, target, exitPath string, check func(string) bool) string {
	t.Helper()
	loggedPaneMissing := false
	last := ""
	for {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for pane %s: %v\nlast capture:\n%s", target, ctx.Err(), last)
		case <-time.After(50 * time.Millisecond):
			if exitPath != "" {
				if data, err := os.ReadFile(exitPath); err == nil {
					code := strings.TrimSpace(string(data))
					if code != "" && code != "0" {
						t.Fatalf("tmux-tab-switcher exited early with code %s", code)
					}
				}
			}
			out, err := capturePane(socket, target)
			if err != nil {
				if errors.Is(err, errPaneUnavailable) {
					if !loggedPaneMissing {
						t.Logf("waiting for pane %s to become available", target)
						loggedPaneMissing = true
					}
					continue
				}
				t.Fatalf("capture-pane error: %v", err)
			}
			last = out
			if check(out) {
				return out
			}
		}
	}
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
