package wm

import (
	"reflect"
	"testing"
)

func TestStackRaiseMovesExistingID(t *testing.T) {
	var s Stack
	s.Raise("a")
	s.Raise("b")
	s.Raise("c")
	s.Raise("a")
	if got, want := s.IDs(), []WindowID{"b", "c", "a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if top, ok := s.Top(); !ok || top != "a" {
		t.Fatalf("expected top a, got %q", top)
	}
}

func TestStackRemove(t *testing.T) {
	var s Stack
	s.Raise("a")
	s.Raise("b")
	if !s.Remove("a") {
		t.Fatalf("expected a to be removed")
	}
	if s.Remove("a") {
		t.Fatalf("expected second removal to report false")
	}
	if s.Contains("a") || s.Len() != 1 {
		t.Fatalf("unexpected stack %v", s.IDs())
	}
}

func TestStackFirstFromTopScansDownward(t *testing.T) {
	var s Stack
	for _, id := range []WindowID{"a", "b", "c", "d"} {
		s.Raise(id)
	}
	skip := map[WindowID]bool{"d": true, "c": true}
	got, ok := s.FirstFromTop(func(id WindowID) bool { return !skip[id] })
	if !ok || got != "b" {
		t.Fatalf("expected b, got %q (ok=%v)", got, ok)
	}
	if _, ok := s.FirstFromTop(func(WindowID) bool { return false }); ok {
		t.Fatalf("expected no match")
	}
}

func TestStackIDsReturnsCopy(t *testing.T) {
	var s Stack
	s.Raise("a")
	ids := s.IDs()
	ids[0] = "mutated"
	if top, _ := s.Top(); top != "a" {
		t.Fatalf("stack mutated through IDs copy: %q", top)
	}
	var empty Stack
	if _, ok := empty.Top(); ok {
		t.Fatalf("expected empty stack to have no top")
	}
}
