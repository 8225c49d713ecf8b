package events

import "github.com/atomicstack/tmux-tab-switcher/internal/logging"

type AppTracer struct{}

type ConfigTracer struct{}

var (
	App    = AppTracer{}
	Config = ConfigTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (ConfigTracer) Options(ignoreCase bool) {
	logging.Trace("config.options", map[string]interface{}{"ignoreCase": ignoreCase})
}

func (ConfigTracer) Fallback(err error) {
	if err == nil {
		return
	}
	logging.Trace("config.fallback", map[string]interface{}{"error": err.Error()})
}
