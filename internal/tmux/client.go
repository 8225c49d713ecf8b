package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"
)

// A single control-mode connection is shared by the pollers and the final
// select-window call.
var (
	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string
)

func clientFor(socketPath string) (tmuxClient, error) {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil && cachedSocket == socketPath {
		return cachedClient, nil
	}
	if cachedClient != nil {
		_ = cachedClient.Close()
		cachedClient = nil
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect to tmux: %w", err)
	}
	cachedClient = client
	cachedSocket = socketPath
	return client, nil
}

// Shutdown closes the shared tmux connection, if one is open.
func Shutdown() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient == nil {
		return
	}
	_ = cachedClient.Close()
	cachedClient = nil
	cachedSocket = ""
}

// ResolveSocketPath picks the tmux socket: the flag value, then
// $TMUX_TAB_SWITCHER_SOCKET, then the socket named in $TMUX, then the
// default socket under $TMUX_TMPDIR.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_TAB_SWITCHER_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

// currentSessionName finds the session that launched the popup: the
// session of $TMUX_PANE, or the session of the first attached client.
func currentSessionName(client tmuxClient) string {
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	if clients, err := client.ListClients(); err == nil {
		for _, c := range clients {
			if c != nil && c.Session != "" {
				return c.Session
			}
		}
	}
	return ""
}
