package shortcut

import "github.com/atomicstack/termdesk/internal/logging/events"

// GlobalScope owns bindings registered without an explicit scope.
const GlobalScope = "global"

// Action is the callable a binding invokes. Menu entries and shortcuts share
// the same callables.
type Action func()

// Binding associates a chord with an action.
type Binding struct {
	Chord  Chord
	Scope  string
	Action Action
}

// Dispatcher maps chords to actions. The first registration of a chord wins;
// later duplicates are dropped until the owner retires its binding.
type Dispatcher struct {
	bindings []Binding
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a global binding. It reports whether the binding was added.
func (d *Dispatcher) Register(chord Chord, action Action) bool {
	return d.RegisterScoped(GlobalScope, chord, action)
}

// RegisterScoped adds a binding owned by scope unless a binding with an
// equal chord already exists.
func (d *Dispatcher) RegisterScoped(scope string, chord Chord, action Action) bool {
	if chord.IsZero() || action == nil {
		return false
	}
	if existing, ok := d.Lookup(chord); ok {
		events.Shortcut.Duplicate(chord.String(), scope, existing.Scope)
		return false
	}
	d.bindings = append(d.bindings, Binding{Chord: chord, Scope: scope, Action: action})
	events.Shortcut.Register(chord.String(), scope)
	return true
}

// Unregister removes the binding for chord, whatever its scope.
func (d *Dispatcher) Unregister(chord Chord) bool {
	for i, b := range d.bindings {
		if b.Chord == chord {
			d.bindings = append(d.bindings[:i], d.bindings[i+1:]...)
			events.Shortcut.Unregister(chord.String(), b.Scope)
			return true
		}
	}
	return false
}

// ReleaseScope removes every binding owned by scope and returns how many
// were removed.
func (d *Dispatcher) ReleaseScope(scope string) int {
	kept := d.bindings[:0]
	removed := 0
	for _, b := range d.bindings {
		if b.Scope == scope {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(d.bindings); i++ {
		d.bindings[i] = Binding{}
	}
	d.bindings = kept
	if removed > 0 {
		events.Shortcut.Release(scope, removed)
	}
	return removed
}

// Lookup returns the binding for chord.
func (d *Dispatcher) Lookup(chord Chord) (Binding, bool) {
	for _, b := range d.bindings {
		if b.Chord == chord {
			return b, true
		}
	}
	return Binding{}, false
}

// Dispatch invokes the action bound to chord. It reports whether a binding
// fired, in which case the caller should swallow the key press.
func (d *Dispatcher) Dispatch(chord Chord) bool {
	var match *Binding
	for i := range d.bindings {
		if d.bindings[i].Chord != chord {
			continue
		}
		if match != nil {
			events.Shortcut.Miss(chord.String())
			return false
		}
		match = &d.bindings[i]
	}
	if match == nil {
		events.Shortcut.Miss(chord.String())
		return false
	}
	action := match.Action
	events.Shortcut.Dispatch(chord.String(), match.Scope)
	action()
	return true
}

// Bindings returns a copy of the registered bindings in registration order.
func (d *Dispatcher) Bindings() []Binding {
	if len(d.bindings) == 0 {
		return nil
	}
	dup := make([]Binding, len(d.bindings))
	copy(dup, d.bindings)
	return dup
}

// Len returns the number of registered bindings.
func (d *Dispatcher) Len() int {
	return len(d.bindings)
}
