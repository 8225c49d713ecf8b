package events

import "github.com/atomicstack/tmux-tab-switcher/internal/logging"

type FilterTracer struct{}

type SelectionTracer struct{}

type CommandTracer struct{}

var (
	Filter    = FilterTracer{}
	Selection = SelectionTracer{}
	Command   = CommandTracer{}
)

func (FilterTracer) Append(filter string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter, "matches": matches})
}

func (FilterTracer) Backspace(filter string, matches int) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter, "matches": matches})
}

func (SelectionTracer) Move(direction string, position int, ok bool) {
	payload := map[string]interface{}{"direction": direction}
	if ok {
		payload["position"] = position
	}
	logging.Trace("selection.move", payload)
}

func (CommandTracer) Queue(name string, payload map[string]interface{}) {
	entry := map[string]interface{}{"command": name}
	for k, v := range payload {
		entry[k] = v
	}
	logging.Trace("command.queue", entry)
}

func (CommandTracer) Defer(name string, index int) {
	logging.Trace("command.defer", map[string]interface{}{"command": name, "index": index})
}

func (CommandTracer) Result(name string, err error) {
	payload := map[string]interface{}{"command": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
