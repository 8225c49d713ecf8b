package backend

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/atomicstack/tmux-tab-switcher/internal/tmux"
)

// DefaultInterval is how often the watcher polls tmux for window changes.
const DefaultInterval = 500 * time.Millisecond

// Event conveys a window snapshot or the error from a failed poll.
type Event struct {
	Windows tmux.WindowSnapshot
	Err     error
}

type fetchFunc func(context.Context) (tmux.WindowSnapshot, error)

// Watcher polls tmux at a fixed interval and publishes a window event when
// the window list changes or a poll fails.
type Watcher struct {
	interval time.Duration
	fetch    fetchFunc

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls the windows of the current session
// on socketPath every interval.
func NewWatcher(socketPath string, interval time.Duration) *Watcher {
	return newWatcher(interval, func(context.Context) (tmux.WindowSnapshot, error) {
		return tmux.FetchWindows(socketPath)
	})
}

func newWatcher(interval time.Duration, fetch fetchFunc) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		interval: interval,
		fetch:    fetch,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events. It is closed once the watcher
// has stopped.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	var last *tmux.WindowSnapshot
	emit := func() bool {
		snapshot, err := w.fetch(w.ctx)
		if err == nil && last != nil && sameSnapshot(*last, snapshot) {
			return true
		}
		if err == nil {
			last = &snapshot
		} else {
			last = nil
		}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- Event{Windows: snapshot, Err: err}:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

func sameSnapshot(a, b tmux.WindowSnapshot) bool {
	return a.Session == b.Session && a.CurrentID == b.CurrentID && slices.Equal(a.Windows, b.Windows)
}
