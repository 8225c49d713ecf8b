package command

import (
	"fmt"
	"sync"

	"github.com/atomicstack/tmux-tab-switcher/internal/logging/events"
	"github.com/atomicstack/tmux-tab-switcher/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Host performs switcher commands against the terminal multiplexer.
type Host interface {
	SwitchTab(index int) error
}

// Bus turns switcher commands into Bubble Tea commands. Closing the overlay
// quits the program; tab switches are held until Flush so the host only
// changes focus once the overlay is gone.
type Bus struct {
	mu      sync.Mutex
	pending []state.SwitchTab
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute maps cmds, in order, onto a Bubble Tea command. It returns nil when
// nothing needs to run inside the program.
func (b *Bus) Execute(cmds []state.Command) tea.Cmd {
	var out []tea.Cmd
	for _, c := range cmds {
		switch c := c.(type) {
		case state.CloseOverlay:
			events.Command.Queue("close", nil)
			out = append(out, tea.Quit)
		case state.SwitchTab:
			b.mu.Lock()
			b.pending = append(b.pending, c)
			b.mu.Unlock()
			events.Command.Defer("switch", c.Index)
		default:
			events.Command.Queue(fmt.Sprintf("%T", c), map[string]interface{}{"ignored": true})
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return tea.Sequence(out...)
	}
}

// Pending reports the tab switches waiting for Flush.
func (b *Bus) Pending() []state.SwitchTab {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]state.SwitchTab(nil), b.pending...)
}

// Flush hands deferred tab switches to host in the order they were queued and
// clears them. It stops at the first failure.
func (b *Bus) Flush(host Host) error {
	b.mu.Lock()
	pending := b.pending
	b.pending = nil
	b.mu.Unlock()

	for _, sw := range pending {
		if host == nil {
			return fmt.Errorf("switch to tab %d: no host", sw.Index)
		}
		err := host.SwitchTab(sw.Index)
		events.Command.Result("switch", err)
		if err != nil {
			return fmt.Errorf("switch to tab %d: %w", sw.Index, err)
		}
	}
	return nil
}
