package ui

import (
	"reflect"

	"github.com/atomicstack/tmux-tab-switcher/internal/backend"
	"github.com/atomicstack/tmux-tab-switcher/internal/data/dispatcher"
	"github.com/atomicstack/tmux-tab-switcher/internal/logging"
	"github.com/atomicstack/tmux-tab-switcher/internal/logging/events"
	"github.com/atomicstack/tmux-tab-switcher/internal/theme"
	"github.com/atomicstack/tmux-tab-switcher/internal/ui/command"
	"github.com/atomicstack/tmux-tab-switcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the tab switcher overlay.
type Model struct {
	switcher *state.Switcher
	styles   *theme.Styles
	keys     keyMap
	help     help.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	errMsg      string

	frame string
	dirty bool

	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the switcher to its tab source and command bus. A nil
// dispatcher or bus gets a fresh instance; a nil watcher means tabs only
// arrive through backend messages sent by the caller.
func NewModel(sw *state.Switcher, width, height int, showFooter bool, watcher *backend.Watcher, d *dispatcher.Dispatcher, bus *command.Bus) *Model {
	if sw == nil {
		sw = state.New(state.DefaultOptions())
	}
	if d == nil {
		d = dispatcher.New()
	}
	if bus == nil {
		bus = command.New()
	}
	m := &Model{
		switcher:   sw,
		styles:     theme.Default(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		showFooter: showFooter,
		dirty:      true,
		backend:    watcher,
		dispatcher: d,
		bus:        bus,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend == nil {
		return nil
	}
	return waitForBackendEvent(m.backend)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Switcher exposes the core state for callers that inspect it after the
// program exits.
func (m *Model) Switcher() *state.Switcher {
	return m.switcher
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	var cmds []tea.Cmd
	for _, k := range m.keys.events(keyMsg) {
		res := m.switcher.Dispatch(k)
		m.traceKey(k, res)
		if res.Redraw {
			m.dirty = true
		}
		if cmd := m.bus.Execute(res.Commands); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return batch(cmds)
}

func (m *Model) traceKey(k state.Key, res state.Result) {
	if !logging.TraceEnabled() || !res.Redraw {
		return
	}
	switch k.Kind {
	case state.KeyRune:
		events.Filter.Append(m.switcher.Filter(), len(m.switcher.Viewable()))
	case state.KeyBackspace:
		events.Filter.Backspace(m.switcher.Filter(), len(m.switcher.Viewable()))
	case state.KeyDown, state.KeyUp:
		pos, ok := m.switcher.Selected()
		events.Selection.Move(k.Kind.String(), pos, ok)
	}
}

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		if m.errMsg != evt.Err.Error() {
			logging.Error(evt.Err)
			m.errMsg = evt.Err.Error()
			m.dirty = true
		}
		events.Tab.PollError(evt.Err)
		return
	}
	if m.errMsg != "" {
		m.errMsg = ""
		m.dirty = true
	}
	update, ok := m.dispatcher.Handle(evt)
	if !ok {
		return
	}
	res := m.switcher.Dispatch(update)
	if res.Redraw {
		m.dirty = true
	}
	pos, selected := m.switcher.Selected()
	events.Tab.Update(len(update.Tabs), pos, selected)
}

func batch(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}
