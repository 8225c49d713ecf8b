package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// TestSessionName is the detached session StartTmuxServer creates.
const TestSessionName = "tmux-tab-switcher-test"

var errPaneUnavailable = errors.New("tmux pane unavailable")

// RequireTmux skips the calling test when tmux is not on PATH.
func RequireTmux(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("skipping: tmux binary not available")
	}
}

// StartTmuxServer boots a private tmux server with one detached session and
// returns its socket, a cleanup that kills it, and the directory holding the
// server's verbose logs.
func StartTmuxServer(t *testing.T) (string, func(), string) {
	t.Helper()
	RequireTmux(t)
	dir, err := os.MkdirTemp("/tmp", "tmux-tab-switcher-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	socket := filepath.Join(dir, "tmux-test.sock")
	cmd := TmuxCommand(socket, "-f", "/dev/null", "-vv", "new-session", "-d", "-s", TestSessionName, "sleep", "600")
	// -vv writes tmux-server-*.log into the working directory.
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := killServer(ctx, socket); err != nil {
			t.Logf("control-mode kill failed for %s: %v; using kill-server", socket, err)
			_ = TmuxCommand(socket, "kill-server").Run()
		}
	}
	return socket, cleanup, dir
}

// AssertNoServerCrash fails the test if a server log under logDir records an
// unexpected exit.
func AssertNoServerCrash(t *testing.T, logDir string) {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(logDir, "tmux-server-*.log"))
	if err != nil {
		t.Fatalf("failed to glob tmux logs: %v", err)
	}
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read tmux server log %s: %v", path, err)
		}
		if bytes.Contains(content, []byte("server exited unexpectedly")) {
			t.Fatalf("tmux server reported unexpected exit; see %s", path)
		}
	}
}

// TmuxCommand builds a tmux invocation against socket. $TMUX is cleared so a
// test never reaches the developer's own server.
func TmuxCommand(socket string, args ...string) *exec.Cmd {
	cmd := exec.Command("tmux", append([]string{"-S", socket}, args...)...)
	cmd.Env = append(slices.DeleteFunc(os.Environ(), func(entry string) bool {
		return strings.HasPrefix(entry, "TMUX=")
	}), "TMUX=", "TMUX_TMPDIR="+filepath.Dir(socket))
	return cmd
}

func capturePane(socket, target string) (string, error) {
	out, err := TmuxCommand(socket, "capture-pane", "-e", "-p", "-t", target).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", errPaneUnavailable
		}
		return "", fmt.Errorf("capture-pane: %w", err)
	}
	return string(out), nil
}

func killServer(ctx context.Context, socket string) error {
	client, err := gotmux.NewTmuxWithOptions(socket, gotmux.WithContext(ctx))
	if err != nil {
		return err
	}
	defer client.Close()
	return client.KillServer()
}
