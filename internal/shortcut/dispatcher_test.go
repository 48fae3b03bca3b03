package shortcut

import (
	"testing"

	"pgregory.net/rapid"
)

func TestRegisterTwiceKeepsOneBinding(t *testing.T) {
	d := NewDispatcher()
	closes := 0
	closeActive := func() { closes++ }
	chord := MustParse("Cmd+W")
	if !d.Register(chord, closeActive) {
		t.Fatalf("expected first registration to succeed")
	}
	if d.Register(MustParse("cmd+w"), closeActive) {
		t.Fatalf("expected duplicate registration to be dropped")
	}
	if d.Len() != 1 {
		t.Fatalf("expected exactly one binding, got %d", d.Len())
	}
	if !d.Dispatch(chord) {
		t.Fatalf("expected dispatch to report handled")
	}
	if closes != 1 {
		t.Fatalf("expected close to run once, ran %d times", closes)
	}
}

func TestFirstRegistrationWins(t *testing.T) {
	d := NewDispatcher()
	var fired string
	d.Register(MustParse("Cmd+N"), func() { fired = "first" })
	d.Register(MustParse("Cmd+N"), func() { fired = "second" })
	d.Dispatch(MustParse("Cmd+N"))
	if fired != "first" {
		t.Fatalf("expected first binding to fire, got %q", fired)
	}
}

func TestDispatchUnknownChordIsNoOp(t *testing.T) {
	d := NewDispatcher()
	d.Register(MustParse("Cmd+W"), func() { t.Fatalf("unexpected invocation") })
	if d.Dispatch(MustParse("Cmd+Q")) {
		t.Fatalf("expected unmatched chord to be unhandled")
	}
}

func TestRegisterRejectsEmptyInput(t *testing.T) {
	d := NewDispatcher()
	if d.Register(Chord{}, func() {}) || d.Register(MustParse("Cmd+W"), nil) {
		t.Fatalf("expected zero chord and nil action to be rejected")
	}
}

func TestReleaseScopeRetiresStaleBindings(t *testing.T) {
	d := NewDispatcher()
	var fired []string
	d.Register(MustParse("Cmd+Q"), func() { fired = append(fired, "quit") })
	d.RegisterScoped("menu", MustParse("Cmd+B"), func() { fired = append(fired, "notes-bold") })
	d.RegisterScoped("menu", MustParse("Cmd+T"), func() { fired = append(fired, "notes-font") })

	if removed := d.ReleaseScope("menu"); removed != 2 {
		t.Fatalf("expected 2 bindings released, got %d", removed)
	}
	if d.Dispatch(MustParse("Cmd+B")) {
		t.Fatalf("expected released binding not to fire")
	}
	if !d.RegisterScoped("menu", MustParse("Cmd+B"), func() { fired = append(fired, "calendar-back") }) {
		t.Fatalf("expected chord to be free after release")
	}
	d.Dispatch(MustParse("Cmd+B"))
	d.Dispatch(MustParse("Cmd+Q"))
	if len(fired) != 2 || fired[0] != "calendar-back" || fired[1] != "quit" {
		t.Fatalf("unexpected invocations %v", fired)
	}
}

func TestUnregister(t *testing.T) {
	d := NewDispatcher()
	d.Register(MustParse("Cmd+W"), func() {})
	if !d.Unregister(MustParse("Cmd+W")) {
		t.Fatalf("expected unregister to succeed")
	}
	if d.Unregister(MustParse("Cmd+W")) {
		t.Fatalf("expected second unregister to fail")
	}
	if _, ok := d.Lookup(MustParse("Cmd+W")); ok {
		t.Fatalf("expected binding gone")
	}
}

func TestActionMayReRegisterDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	ran := 0
	d.RegisterScoped("menu", MustParse("Cmd+R"), func() {
		ran++
		d.ReleaseScope("menu")
		d.RegisterScoped("menu", MustParse("Cmd+R"), func() { ran += 10 })
	})
	if !d.Dispatch(MustParse("Cmd+R")) || ran != 1 {
		t.Fatalf("expected original action to run once, ran=%d", ran)
	}
	d.Dispatch(MustParse("Cmd+R"))
	if ran != 11 {
		t.Fatalf("expected replacement action to run, ran=%d", ran)
	}
}

func TestChordsStayUnique(t *testing.T) {
	keys := []string{"W", "M", "Q", "N", "H"}
	mods := []Modifier{ModCmd, ModCmd | ModAlt, ModCmd | ModShift, ModCtrl}
	scopes := []string{GlobalScope, "menu", "app"}
	rapid.Check(t, func(rt *rapid.T) {
		d := NewDispatcher()
		steps := rapid.IntRange(1, 50).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			chord := New(rapid.SampledFrom(mods).Draw(rt, "mod"), rapid.SampledFrom(keys).Draw(rt, "key"))
			scope := rapid.SampledFrom(scopes).Draw(rt, "scope")
			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				d.RegisterScoped(scope, chord, func() {})
			case 1:
				d.Unregister(chord)
			case 2:
				d.ReleaseScope(scope)
			}
			seen := map[Chord]bool{}
			for _, b := range d.Bindings() {
				if seen[b.Chord] {
					rt.Fatalf("chord %s bound twice", b.Chord)
				}
				seen[b.Chord] = true
			}
		}
	})
}
