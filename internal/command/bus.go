// Package command routes named desktop commands through a single traced
// executor so that menus, shortcuts and pointer input share one code path.
package command

import (
	"sort"

	"github.com/atomicstack/termdesk/internal/logging/events"
)

// Action is a synchronous state change.
type Action func()

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Action
}

// Bus executes requests in the caller's goroutine while emitting trace logs.
type Bus struct {
	executed int
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the request's handler. It reports false when there was
// nothing to run.
func (b *Bus) Execute(req Request) bool {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return false
	}
	req.Handler()
	b.executed++
	events.Command.Result(req.ID, req.Label)
	return true
}

// Bind returns an Action that executes handler through the bus.
func (b *Bus) Bind(id, label string, handler Action) Action {
	if handler == nil {
		return nil
	}
	return func() {
		b.Execute(Request{ID: id, Label: label, Handler: handler})
	}
}

// Executed returns how many requests ran a handler.
func (b *Bus) Executed() int {
	return b.executed
}

// Table maps command names to handlers.
type Table struct {
	handlers map[string]Action
}

// NewTable returns an empty command table.
func NewTable() *Table {
	return &Table{handlers: make(map[string]Action)}
}

// Register adds or replaces a named command. Nil handlers are ignored.
func (t *Table) Register(name string, handler Action) {
	if name == "" || handler == nil {
		return
	}
	t.handlers[name] = handler
}

// Lookup returns the handler registered under name.
func (t *Table) Lookup(name string) (Action, bool) {
	h, ok := t.handlers[name]
	return h, ok
}

// Names lists registered commands in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.handlers))
	for name := range t.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
