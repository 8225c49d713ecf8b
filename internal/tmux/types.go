package tmux

import (
	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Window is a tmux window of the session the switcher was opened from.
type Window struct {
	ID      string
	Session string
	Index   int
	Name    string
	Active  bool
}

// WindowSnapshot lists the windows of one session ordered by window index.
type WindowSnapshot struct {
	Session   string
	Windows   []Window
	CurrentID string
}

type tmuxClient interface {
	ListWindowsFormat(target, filter, format string) ([]string, error)
	ListClients() ([]*gotmux.Client, error)
	DisplayMessage(target, format string) (string, error)
	SelectWindow(target string) error
	Close() error
}

var newTmux = func(socketPath string) (tmuxClient, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}
