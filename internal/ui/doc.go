// Package ui contains the Bubble Tea program that powers the tab switcher
// popup.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are classified by the keymap (keys.go) into state.Key
//     events and handed to the switcher core in internal/ui/state. The
//     commands the core emits go through internal/ui/command: closing the
//     overlay quits the program, while tab switches are held by the bus and
//     performed by the app once the program has exited.
//   - A backend.Watcher streams window snapshots. The data dispatcher turns
//     each one into a state.TabUpdate and remembers which tmux window every
//     tab number maps to.
//
// Rendering:
//   - Render is a pure projection of the switcher onto styled lines. View
//     fits those lines to the popup and caches the result until an update
//     asks for a redraw.
package ui
