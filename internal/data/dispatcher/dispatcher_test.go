package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-tab-switcher/internal/backend"
	"github.com/atomicstack/tmux-tab-switcher/internal/tmux"
)

func sampleSnapshot() tmux.WindowSnapshot {
	return tmux.WindowSnapshot{
		Session:   "work",
		CurrentID: "@5",
		Windows: []tmux.Window{
			{ID: "@1", Session: "work", Index: 0, Name: "editor"},
			{ID: "@5", Session: "work", Index: 3, Name: "tests", Active: true},
			{ID: "@9", Session: "work", Index: 7, Name: "logs"},
		},
	}
}

func TestHandleBuildsOrdinalTabs(t *testing.T) {
	d := New()
	update, ok := d.Handle(backend.Event{Windows: sampleSnapshot()})
	if !ok {
		t.Fatalf("expected update")
	}
	if len(update.Tabs) != 3 {
		t.Fatalf("expected 3 tabs, got %d", len(update.Tabs))
	}
	for i, tab := range update.Tabs {
		if tab.Position != i {
			t.Fatalf("expected ordinal position %d, got %d", i, tab.Position)
		}
	}
	if update.Tabs[1].Name != "tests" || !update.Tabs[1].Active {
		t.Fatalf("expected active tests tab, got %#v", update.Tabs[1])
	}
	if update.Tabs[0].Active || update.Tabs[2].Active {
		t.Fatalf("expected a single active tab, got %#v", update.Tabs)
	}
	if d.Session() != "work" {
		t.Fatalf("expected session work, got %q", d.Session())
	}
}

func TestHandleMarksCurrentIDActive(t *testing.T) {
	snap := sampleSnapshot()
	snap.Windows[1].Active = false
	update, _ := New().Handle(backend.Event{Windows: snap})
	if !update.Tabs[1].Active {
		t.Fatalf("expected CurrentID window to be active")
	}
}

func TestHandleIgnoresErrors(t *testing.T) {
	d := New()
	d.Handle(backend.Event{Windows: sampleSnapshot()})
	if _, ok := d.Handle(backend.Event{Err: errors.New("boom")}); ok {
		t.Fatalf("expected failed poll to produce no update")
	}
	if target, ok := d.Target(3); !ok || target != "@9" {
		t.Fatalf("expected targets to survive a failed poll, got %q %v", target, ok)
	}
}

func TestTargetMapsTabNumbers(t *testing.T) {
	d := New()
	if _, ok := d.Target(1); ok {
		t.Fatalf("expected no target before the first snapshot")
	}
	d.Handle(backend.Event{Windows: sampleSnapshot()})
	tests := map[int]string{1: "@1", 2: "@5", 3: "@9"}
	for index, want := range tests {
		got, ok := d.Target(index)
		if !ok || got != want {
			t.Fatalf("index %d: expected %q, got %q (%v)", index, want, got, ok)
		}
	}
	for _, index := range []int{0, -1, 4} {
		if _, ok := d.Target(index); ok {
			t.Fatalf("expected index %d to be out of range", index)
		}
	}
}

func TestHandleEmptySnapshotClearsTargets(t *testing.T) {
	d := New()
	d.Handle(backend.Event{Windows: sampleSnapshot()})
	update, ok := d.Handle(backend.Event{Windows: tmux.WindowSnapshot{Session: "work"}})
	if !ok || len(update.Tabs) != 0 {
		t.Fatalf("expected empty update, got %#v", update)
	}
	if _, ok := d.Target(1); ok {
		t.Fatalf("expected targets to be cleared")
	}
}
