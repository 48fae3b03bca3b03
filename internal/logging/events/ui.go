package events

import "github.com/atomicstack/termdesk/internal/logging"

type MenuBarTracer struct{}

type ShortcutTracer struct{}

type ScreenTracer struct{}

type CommandTracer struct{}

var (
	MenuBar  = MenuBarTracer{}
	Shortcut = ShortcutTracer{}
	Screen   = ScreenTracer{}
	Command  = CommandTracer{}
)

func (MenuBarTracer) Transition(trigger, from, to string) {
	logging.Trace("menubar.transition", map[string]interface{}{
		"trigger": trigger,
		"from":    from,
		"to":      to,
	})
}

func (MenuBarTracer) Select(menu, item string) {
	logging.Trace("menubar.select", map[string]interface{}{"menu": menu, "item": item})
}

func (MenuBarTracer) Ignored(menu, item, reason string) {
	logging.Trace("menubar.ignored", map[string]interface{}{"menu": menu, "item": item, "reason": reason})
}

func (ShortcutTracer) Register(chord, scope string) {
	logging.Trace("shortcut.register", map[string]interface{}{"chord": chord, "scope": scope})
}

func (ShortcutTracer) Duplicate(chord, scope, owner string) {
	logging.Trace("shortcut.duplicate", map[string]interface{}{"chord": chord, "scope": scope, "owner": owner})
}

func (ShortcutTracer) Unregister(chord, scope string) {
	logging.Trace("shortcut.unregister", map[string]interface{}{"chord": chord, "scope": scope})
}

func (ShortcutTracer) Release(scope string, count int) {
	logging.Trace("shortcut.release", map[string]interface{}{"scope": scope, "count": count})
}

func (ShortcutTracer) Dispatch(chord, scope string) {
	logging.Trace("shortcut.dispatch", map[string]interface{}{"chord": chord, "scope": scope})
}

func (ShortcutTracer) Miss(chord string) {
	logging.Trace("shortcut.miss", map[string]interface{}{"chord": chord})
}

func (ScreenTracer) Lock() {
	logging.Trace("screen.lock", nil)
}

func (ScreenTracer) Unlock() {
	logging.Trace("screen.unlock", nil)
}

func (ScreenTracer) Spotlight(open bool, query string) {
	logging.Trace("screen.spotlight", map[string]interface{}{"open": open, "query": query})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label})
}
