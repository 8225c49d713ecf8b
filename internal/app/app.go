package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tmux-tab-switcher/internal/backend"
	"github.com/atomicstack/tmux-tab-switcher/internal/data/dispatcher"
	"github.com/atomicstack/tmux-tab-switcher/internal/logging"
	"github.com/atomicstack/tmux-tab-switcher/internal/logging/events"
	"github.com/atomicstack/tmux-tab-switcher/internal/tmux"
	"github.com/atomicstack/tmux-tab-switcher/internal/ui"
	"github.com/atomicstack/tmux-tab-switcher/internal/ui/command"
	"github.com/atomicstack/tmux-tab-switcher/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath string
	Width      int
	Height     int
	ShowFooter bool
	// Options are the raw switcher options, e.g. "ignore_case".
	Options map[string]string
}

var selectWindow = tmux.SelectWindow

// Run bootstraps and executes the Bubble Tea program. A tab chosen in the
// overlay is selected in tmux after the program has exited.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	defer tmux.Shutdown()

	sw := state.New(switcherOptions(cfg.Options))
	watcher := backend.NewWatcher(socketPath, backend.DefaultInterval)
	defer watcher.Stop()
	windows := dispatcher.New()
	bus := command.New()

	model := ui.NewModel(sw, cfg.Width, cfg.Height, cfg.ShowFooter, watcher, windows, bus)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	// The poller must be idle before select-window uses the shared client.
	watcher.Stop()
	watcher.Wait()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return bus.Flush(tmuxHost{socketPath: socketPath, windows: windows})
}

// switcherOptions parses the raw option map. An invalid value is logged and
// replaced by its default.
func switcherOptions(raw map[string]string) state.Options {
	opts, err := state.ParseOptions(raw)
	if err != nil {
		logging.Warn(err)
		events.Config.Fallback(err)
	}
	events.Config.Options(opts.IgnoreCase)
	return opts
}

// tmuxHost selects the tmux window behind a tab number from the most recent
// snapshot.
type tmuxHost struct {
	socketPath string
	windows    *dispatcher.Dispatcher
}

func (h tmuxHost) SwitchTab(index int) error {
	target, ok := h.windows.Target(index)
	if !ok {
		return fmt.Errorf("no window for tab %d", index)
	}
	events.Tab.Switch(index, target)
	return selectWindow(h.socketPath, target)
}
