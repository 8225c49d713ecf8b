package ui

import (
	"testing"

	"github.com/atomicstack/tmux-tab-switcher/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMapEvents(t *testing.T) {
	keys := defaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want state.Key
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, state.Key{Kind: state.KeyCancel}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, state.Key{Kind: state.KeyCancel}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, state.Key{Kind: state.KeyDown}},
		{"ctrl+n", tea.KeyMsg{Type: tea.KeyCtrlN}, state.Key{Kind: state.KeyDown}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, state.Key{Kind: state.KeyUp}},
		{"ctrl+p", tea.KeyMsg{Type: tea.KeyCtrlP}, state.Key{Kind: state.KeyUp}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, state.Key{Kind: state.KeyConfirm}},
		{"Y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, state.Key{Kind: state.KeyConfirm}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, state.Key{Kind: state.KeyBackspace}},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, state.Key{Kind: state.KeyBackspace}},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, state.Key{Kind: state.KeyRune, Rune: 'y'}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, state.Key{Kind: state.KeyRune, Rune: ' '}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, state.Key{Kind: state.KeyOther}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, state.Key{Kind: state.KeyOther}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, state.Key{Kind: state.KeyOther}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys.events(tt.msg)
			if len(got) != 1 || got[0] != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestKeyMapEventsSplitsPastes(t *testing.T) {
	got := defaultKeyMap().events(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("aYb\u0007")})
	want := []state.Key{
		{Kind: state.KeyRune, Rune: 'a'},
		{Kind: state.KeyRune, Rune: 'Y'},
		{Kind: state.KeyRune, Rune: 'b'},
		{Kind: state.KeyOther},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := defaultKeyMap()
	if len(keys.ShortHelp()) != 4 {
		t.Fatalf("expected 4 short help bindings, got %d", len(keys.ShortHelp()))
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 5 {
		t.Fatalf("expected 5 full help bindings, got %d", total)
	}
}

func TestConfirmHelpNamesBothKeys(t *testing.T) {
	help := defaultKeyMap().Confirm.Help()
	if help.Key != "enter/Y" || help.Desc != "switch" {
		t.Fatalf("expected enter/Y switch help, got %q %q", help.Key, help.Desc)
	}
}
