package dispatcher

import (
	"github.com/atomicstack/tmux-tab-switcher/internal/backend"
	"github.com/atomicstack/tmux-tab-switcher/internal/tmux"
	"github.com/atomicstack/tmux-tab-switcher/internal/ui/state"
)

// Dispatcher turns backend window snapshots into switcher tab updates and
// remembers which tmux window each tab number refers to.
type Dispatcher struct {
	session string
	targets []string
}

func New() *Dispatcher {
	return &Dispatcher{}
}

// Handle converts evt into a TabUpdate. Failed polls produce no update so the
// switcher keeps showing the last good list.
func (d *Dispatcher) Handle(evt backend.Event) (state.TabUpdate, bool) {
	if evt.Err != nil {
		return state.TabUpdate{}, false
	}
	return d.apply(evt.Windows), true
}

func (d *Dispatcher) apply(snapshot tmux.WindowSnapshot) state.TabUpdate {
	tabs := make([]state.Tab, 0, len(snapshot.Windows))
	targets := make([]string, 0, len(snapshot.Windows))
	for i, w := range snapshot.Windows {
		tabs = append(tabs, state.Tab{
			Position: i,
			Name:     w.Name,
			Active:   w.Active || (snapshot.CurrentID != "" && w.ID == snapshot.CurrentID),
		})
		targets = append(targets, w.ID)
	}
	d.session = snapshot.Session
	d.targets = targets
	return state.TabUpdate{Tabs: tabs}
}

// Target returns the tmux window id for the 1-based tab index from the most
// recent snapshot.
func (d *Dispatcher) Target(index int) (string, bool) {
	if index < 1 || index > len(d.targets) {
		return "", false
	}
	return d.targets[index-1], true
}

// Session is the tmux session of the most recent snapshot.
func (d *Dispatcher) Session() string {
	return d.session
}
