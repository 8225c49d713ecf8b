package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-tab-switcher/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

type recordingHost struct {
	calls []int
	err   error
}

func (h *recordingHost) SwitchTab(index int) error {
	h.calls = append(h.calls, index)
	return h.err
}

func TestExecuteCloseQuits(t *testing.T) {
	bus := New()
	cmd := bus.Execute([]state.Command{state.CloseOverlay{}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if len(bus.Pending()) != 0 {
		t.Fatalf("expected no pending switches")
	}
}

func TestExecuteDefersSwitchUntilFlush(t *testing.T) {
	bus := New()
	cmd := bus.Execute([]state.Command{state.CloseOverlay{}, state.SwitchTab{Index: 3}})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected close to map onto tea.Quit")
	}
	pending := bus.Pending()
	if len(pending) != 1 || pending[0].Index != 3 {
		t.Fatalf("expected deferred switch to tab 3, got %#v", pending)
	}

	host := &recordingHost{}
	if err := bus.Flush(host); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(host.calls) != 1 || host.calls[0] != 3 {
		t.Fatalf("expected host switch to 3, got %v", host.calls)
	}
	if len(bus.Pending()) != 0 {
		t.Fatalf("expected flush to clear pending switches")
	}
	if err := bus.Flush(host); err != nil || len(host.calls) != 1 {
		t.Fatalf("expected second flush to be a no-op, got %v (%v)", host.calls, err)
	}
}

func TestExecuteNothingToRun(t *testing.T) {
	bus := New()
	if cmd := bus.Execute(nil); cmd != nil {
		t.Fatalf("expected nil command for no commands")
	}
	if cmd := bus.Execute([]state.Command{state.SwitchTab{Index: 1}}); cmd != nil {
		t.Fatalf("expected switch alone to run nothing in the program")
	}
}

func TestFlushPropagatesHostError(t *testing.T) {
	bus := New()
	bus.Execute([]state.Command{state.SwitchTab{Index: 2}, state.SwitchTab{Index: 4}})
	boom := errors.New("boom")
	host := &recordingHost{err: boom}
	err := bus.Flush(host)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped host error, got %v", err)
	}
	if len(host.calls) != 1 {
		t.Fatalf("expected flush to stop at first failure, got %v", host.calls)
	}
}

func TestFlushWithoutHost(t *testing.T) {
	bus := New()
	if err := bus.Flush(nil); err != nil {
		t.Fatalf("expected empty flush to succeed without a host, got %v", err)
	}
	bus.Execute([]state.Command{state.SwitchTab{Index: 1}})
	if err := bus.Flush(nil); err == nil {
		t.Fatalf("expected error when flushing without a host")
	}
}
