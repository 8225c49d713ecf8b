package ui

import (
	"unicode"

	"github.com/atomicstack/tmux-tab-switcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Cancel    key.Binding
	Down      key.Binding
	Up        key.Binding
	Confirm   key.Binding
	Backspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "prev"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "Y"),
			key.WithHelp("enter/Y", "switch"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "delete"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Confirm, k.Backspace, k.Cancel}}
}

// events classifies msg into switcher keys. A multi-rune message (a paste)
// yields one key per rune.
func (k keyMap) events(msg tea.KeyMsg) []state.Key {
	switch {
	case key.Matches(msg, k.Cancel):
		return []state.Key{{Kind: state.KeyCancel}}
	case key.Matches(msg, k.Down):
		return []state.Key{{Kind: state.KeyDown}}
	case key.Matches(msg, k.Up):
		return []state.Key{{Kind: state.KeyUp}}
	case key.Matches(msg, k.Confirm):
		return []state.Key{{Kind: state.KeyConfirm}}
	case key.Matches(msg, k.Backspace):
		return []state.Key{{Kind: state.KeyBackspace}}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []state.Key{{Kind: state.KeyRune, Rune: ' '}}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return []state.Key{{Kind: state.KeyOther}}
		}
		keys := make([]state.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if !unicode.IsPrint(r) {
				keys = append(keys, state.Key{Kind: state.KeyOther})
				continue
			}
			keys = append(keys, state.Key{Kind: state.KeyRune, Rune: r})
		}
		return keys
	}
	return []state.Key{{Kind: state.KeyOther}}
}
