package events

import "github.com/atomicstack/termdesk/internal/logging"

type WindowTracer struct{}

// WindowSource names the input that caused a window operation.
type WindowSource string

const (
	SourceDock      WindowSource = "dock"
	SourceMenu      WindowSource = "menu"
	SourceShortcut  WindowSource = "shortcut"
	SourceTitleBar  WindowSource = "titlebar"
	SourceSpotlight WindowSource = "spotlight"
	SourcePointer   WindowSource = "pointer"
)

var Window = WindowTracer{}

func (WindowTracer) Open(id string, source WindowSource) {
	logging.Trace("window.open", map[string]interface{}{"id": id, "source": string(source)})
}

func (WindowTracer) Close(id string, source WindowSource) {
	logging.Trace("window.close", map[string]interface{}{"id": id, "source": string(source)})
}

func (WindowTracer) Minimize(id string, source WindowSource) {
	logging.Trace("window.minimize", map[string]interface{}{"id": id, "source": string(source)})
}

func (WindowTracer) Maximize(id string, source WindowSource) {
	logging.Trace("window.maximize", map[string]interface{}{"id": id, "source": string(source)})
}

func (WindowTracer) Focus(id string, source WindowSource) {
	logging.Trace("window.focus", map[string]interface{}{"id": id, "source": string(source)})
}

func (WindowTracer) Copy(id string, size int) {
	logging.Trace("window.copy", map[string]interface{}{"id": id, "bytes": size})
}

func (WindowTracer) Bulk(op string) {
	logging.Trace("window.bulk", map[string]interface{}{"op": op})
}

func (WindowTracer) ActiveChanged(from, to string) {
	logging.Trace("window.active", map[string]interface{}{"from": from, "to": to})
}
