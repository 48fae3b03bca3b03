package events

import "github.com/atomicstack/termdesk/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Catalog(apps int, overlay string) {
	logging.Trace("app.catalog", map[string]interface{}{"apps": apps, "overlay": overlay})
}

func (AppTracer) Stop(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.stop", payload)
}
