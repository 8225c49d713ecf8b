package events

import "github.com/atomicstack/tmux-tab-switcher/internal/logging"

type TabTracer struct{}

var Tab = TabTracer{}

func (TabTracer) Update(count int, selected int, ok bool) {
	payload := map[string]interface{}{"count": count}
	if ok {
		payload["selected"] = selected
	}
	logging.Trace("tab.update", payload)
}

func (TabTracer) Switch(index int, target string) {
	logging.Trace("tab.switch", map[string]interface{}{"index": index, "target": target})
}

func (TabTracer) PollError(err error) {
	if err == nil {
		return
	}
	logging.Trace("tab.poll.error", map[string]interface{}{"error": err.Error()})
}
