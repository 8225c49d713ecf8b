package state

import "unicode"

// Event is one input delivered by the host. The set of implementations is
// closed: TabUpdate and Key.
type Event interface {
	isEvent()
}

// TabUpdate carries a fresh tab list from the host.
type TabUpdate struct {
	Tabs []Tab
}

// KeyKind classifies a key press.
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyCancel
	KeyDown
	KeyUp
	KeyConfirm
	KeyBackspace
	KeyRune
)

var keyKindNames = [...]string{
	KeyOther:     "other",
	KeyCancel:    "cancel",
	KeyDown:      "down",
	KeyUp:        "up",
	KeyConfirm:   "confirm",
	KeyBackspace: "backspace",
	KeyRune:      "rune",
}

func (k KeyKind) String() string {
	if k < 0 || int(k) >= len(keyKindNames) {
		return "unknown"
	}
	return keyKindNames[k]
}

// Key is a classified key press. Rune is only meaningful for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

func (TabUpdate) isEvent() {}
func (Key) isEvent()       {}

// Command is an instruction for the host.
type Command interface {
	isCommand()
}

// CloseOverlay asks the host to dismiss the overlay.
type CloseOverlay struct{}

// SwitchTab asks the host to focus the tab with the given 1-based index.
type SwitchTab struct {
	Index int
}

func (CloseOverlay) isCommand() {}
func (SwitchTab) isCommand()    {}

// Result describes the outcome of one dispatched event.
type Result struct {
	Commands []Command
	Redraw   bool
}

// Dispatch applies ev to the switcher. Every event produces a defined
// result; unrecognised events are no-ops without a redraw.
func (s *Switcher) Dispatch(ev Event) Result {
	switch ev := ev.(type) {
	case TabUpdate:
		s.SetTabs(ev.Tabs)
		return Result{Redraw: true}
	case Key:
		return s.dispatchKey(ev)
	default:
		return Result{}
	}
}

func (s *Switcher) dispatchKey(k Key) Result {
	switch k.Kind {
	case KeyCancel:
		return Result{Commands: []Command{CloseOverlay{}}}
	case KeyDown:
		s.SelectDown()
		return Result{Redraw: true}
	case KeyUp:
		s.SelectUp()
		return Result{Redraw: true}
	case KeyConfirm:
		tab, ok := s.SelectedTab()
		if !ok {
			return Result{}
		}
		return Result{Commands: []Command{CloseOverlay{}, SwitchTab{Index: tab.Number()}}}
	case KeyBackspace:
		s.DeleteFilterRune()
		return Result{Redraw: true}
	case KeyRune:
		if !unicode.IsPrint(k.Rune) {
			return Result{}
		}
		s.AppendFilter(k.Rune)
		return Result{Redraw: true}
	default:
		return Result{}
	}
}
