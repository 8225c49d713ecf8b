package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestSwitcherSelectsFilteredWindow(t *testing.T) {
	bin := BuildBinary(t)
	socket, cleanup, logDir := StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		AssertNoServerCrash(t, logDir)
	})
	session := "switcher"
	pane := session + ":0.0"
	scriptDir := t.TempDir()
	exitFile := filepath.Join(scriptDir, "exit-code")
	scriptPath := filepath.Join(scriptDir, "run.sh")
	script := LauncherScript(bin, socket, filepath.Join(scriptDir, "switcher.log"), exitFile)
	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write launcher script: %v", err)
	}
	cmd := TmuxCommand(socket, "new-session", "-d", "-x", "80", "-y", "24", "-s", session, "-n", "launcher", scriptPath)
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to launch binary: %v", err)
	}
	if err := TmuxCommand(socket, "has-session", "-t", session).Run(); err != nil {
		t.Skipf("skipping: unable to create tmux session: %v", err)
	}
	for _, name := range []string{"build", "logs"} {
		if err := TmuxCommand(socket, "new-window", "-d", "-t", session, "-n", name).Run(); err != nil {
			t.Fatalf("failed to create window %s: %v", name, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	WaitForPane(t, ctx, socket, pane, exitFile, func(out string) bool {
		out = ansi.Strip(out)
		return strings.Contains(out, "2:build") && strings.Contains(out, "3:logs")
	})

	if err := TmuxCommand(socket, "send-keys", "-t", pane, "-l", "logs").Run(); err != nil {
		t.Fatalf("send-keys failed: %v", err)
	}
	WaitForPane(t, ctx, socket, pane, exitFile, func(out string) bool {
		out = ansi.Strip(out)
		return strings.Contains(out, "> logs") && !strings.Contains(out, "2:build")
	})
	if err := TmuxCommand(socket, "send-keys", "-t", pane, "Enter").Run(); err != nil {
		t.Fatalf("send-keys failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("expected logs window to become active")
		case <-time.After(50 * time.Millisecond):
			out, err := TmuxCommand(socket, "display-message", "-t", session, "-p", "#{window_name}").Output()
			if err == nil && strings.TrimSpace(string(out)) == "logs" {
				return
			}
		}
	}
}
