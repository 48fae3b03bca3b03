package wm

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

var testApps = []WindowID{"finder", "notes", "calendar", "about", "projects"}

func newTestStore() *Store {
	known := make(map[WindowID]bool, len(testApps))
	for _, id := range testApps {
		known[id] = true
	}
	return NewStore(ResolverFunc(func(id string) (Defaults, bool) {
		if !known[id] {
			return Defaults{}, false
		}
		return Defaults{
			Title:    id,
			Icon:     "*",
			Position: Point{X: 2, Y: 1},
			Size:     Size{Width: 30, Height: 10},
		}, true
	}))
}

func mustValid(t *testing.T, s *Store) Snapshot {
	t.Helper()
	snap := s.Snapshot()
	if err := snap.Validate(); err != nil {
		t.Fatalf("invariant violated: %v (snapshot %+v)", err, snap)
	}
	return snap
}

func TestOpenSeedsRecordFromResolver(t *testing.T) {
	s := newTestStore()
	s.Open("notes")
	rec, ok := s.Record("notes")
	if !ok {
		t.Fatalf("expected notes record")
	}
	if rec.Title != "notes" || rec.Size.Width != 30 || rec.Position.X != 2 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if s.Active() != "notes" {
		t.Fatalf("expected notes active, got %q", s.Active())
	}
	mustValid(t, s)
}

func TestOpenUnknownAppIsNoOp(t *testing.T) {
	s := newTestStore()
	s.Open("solitaire")
	snap := mustValid(t, s)
	if len(snap.Open) != 0 || snap.Active != "" {
		t.Fatalf("expected empty store, got %+v", snap)
	}
	nilResolver := NewStore(nil)
	nilResolver.Open("notes")
	if nilResolver.IsOpen("notes") {
		t.Fatalf("expected store without resolver to ignore open")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Open("finder")
	s.Open("finder")
	snap := mustValid(t, s)
	if !reflect.DeepEqual(snap.Open, []WindowID{"finder", "notes"}) {
		t.Fatalf("unexpected open set %v", snap.Open)
	}
	if snap.Active != "finder" {
		t.Fatalf("expected finder active, got %q", snap.Active)
	}
	if !reflect.DeepEqual(snap.ZOrder, []WindowID{"notes", "finder"}) {
		t.Fatalf("expected finder raised to top, got %v", snap.ZOrder)
	}
}

func TestOpenRestoresMinimizedWindow(t *testing.T) {
	s := newTestStore()
	s.Open("notes")
	s.Minimize("notes")
	s.Open("notes")
	if s.IsMinimized("notes") || s.Active() != "notes" {
		t.Fatalf("expected notes restored and active")
	}
	mustValid(t, s)
}

func TestMinimizeAndCloseFallBackToPreviousWindow(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Minimize("notes")
	if s.Active() != "finder" {
		t.Fatalf("minimize: expected finder active, got %q", s.Active())
	}
	mustValid(t, s)

	s = newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Close("notes")
	if s.Active() != "finder" {
		t.Fatalf("close: expected finder active, got %q", s.Active())
	}
	if s.IsOpen("notes") {
		t.Fatalf("expected notes record discarded")
	}
	mustValid(t, s)
}

func TestFocusResolutionLaw(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Open("calendar")
	steps := []struct {
		minimize WindowID
		active   WindowID
	}{
		{"calendar", "notes"},
		{"notes", "finder"},
		{"finder", ""},
	}
	for _, step := range steps {
		s.Minimize(step.minimize)
		if got := s.Active(); got != step.active {
			t.Fatalf("after minimize(%s): expected active %q, got %q", step.minimize, step.active, got)
		}
		mustValid(t, s)
	}
}

func TestFocusRaisesAndReorders(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Open("calendar")
	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.ZOrder, []WindowID{"finder", "notes", "calendar"}) || snap.Active != "calendar" {
		t.Fatalf("unexpected initial snapshot %+v", snap)
	}
	s.Focus("finder")
	snap = mustValid(t, s)
	if !reflect.DeepEqual(snap.ZOrder, []WindowID{"notes", "calendar", "finder"}) {
		t.Fatalf("unexpected z-order %v", snap.ZOrder)
	}
	if snap.Active != "finder" {
		t.Fatalf("expected finder active, got %q", snap.Active)
	}
}

func TestFocusIgnoresMinimizedWindow(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Minimize("finder")
	before := s.Snapshot()
	s.Focus("finder")
	after := mustValid(t, s)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected focus on minimized window to be a no-op\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestMinimizeTogglesBackToActive(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Minimize("finder")
	s.Minimize("finder")
	if s.IsMinimized("finder") || s.Active() != "finder" {
		t.Fatalf("expected finder restored and active, active=%q", s.Active())
	}
	if top, _ := s.stack.Top(); top != "finder" {
		t.Fatalf("expected finder on top, got %q", top)
	}
	mustValid(t, s)
}

func TestMaximizeTogglesIndependently(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Maximize("finder")
	if !s.IsMaximized("finder") || s.Active() != "finder" {
		t.Fatalf("expected finder maximized and active")
	}
	s.Maximize("finder")
	if s.IsMaximized("finder") {
		t.Fatalf("expected second maximize to restore")
	}
	s.Minimize("notes")
	s.Maximize("notes")
	if !s.IsMaximized("notes") || !s.IsMinimized("notes") {
		t.Fatalf("expected maximize to leave minimized flag alone")
	}
	if s.Active() != "finder" {
		t.Fatalf("expected minimized window not to take focus, active=%q", s.Active())
	}
	mustValid(t, s)
}

func TestBringToTopKeepsFlags(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Minimize("finder")
	s.BringToTop("finder")
	snap := mustValid(t, s)
	if !reflect.DeepEqual(snap.ZOrder, []WindowID{"notes", "finder"}) {
		t.Fatalf("unexpected z-order %v", snap.ZOrder)
	}
	if snap.Active != "notes" || !snap.IsMinimized("finder") {
		t.Fatalf("expected flags untouched, got %+v", snap)
	}
}

func TestBulkMinimize(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Open("calendar")
	s.HideAllExceptActive()
	snap := mustValid(t, s)
	if snap.Active != "calendar" || !reflect.DeepEqual(snap.Minimized, []WindowID{"finder", "notes"}) {
		t.Fatalf("unexpected snapshot after hide others: %+v", snap)
	}
	s.MinimizeAll()
	snap = mustValid(t, s)
	if snap.Active != "" || len(snap.Minimized) != 3 {
		t.Fatalf("unexpected snapshot after minimize all: %+v", snap)
	}
}

func TestUnknownIDsAreIgnored(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	before := s.Snapshot()
	s.Close("ghost")
	s.Minimize("ghost")
	s.Maximize("ghost")
	s.Focus("ghost")
	s.BringToTop("ghost")
	s.Move("ghost", Point{X: 9, Y: 9})
	s.Resize("ghost", Size{Width: 9, Height: 9})
	if after := s.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Fatalf("expected no change, got %+v", after)
	}
}

func TestMoveAndResizeOnlyTouchGeometry(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	s.Open("notes")
	s.Move("finder", Point{X: 10, Y: 4})
	s.Resize("finder", Size{Width: 40, Height: 12})
	s.Resize("finder", Size{Width: 0, Height: 12})
	rec, _ := s.Record("finder")
	if rec.Position != (Point{X: 10, Y: 4}) || rec.Size != (Size{Width: 40, Height: 12}) {
		t.Fatalf("unexpected geometry %+v", rec)
	}
	if s.Active() != "notes" {
		t.Fatalf("expected geometry change to leave focus alone")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newTestStore()
	s.Open("finder")
	snap := s.Snapshot()
	snap.Open[0] = "mutated"
	rec := snap.Records["finder"]
	rec.Title = "mutated"
	snap.Records["finder"] = rec
	if got, _ := s.Record("finder"); got.Title != "finder" {
		t.Fatalf("store mutated through snapshot")
	}
	if !s.IsOpen("finder") {
		t.Fatalf("open set mutated through snapshot")
	}
}

func TestStoreInvariantsHoldForRandomOperations(t *testing.T) {
	ids := append([]WindowID{"ghost"}, testApps...)
	rapid.Check(t, func(rt *rapid.T) {
		s := newTestStore()
		ops := rapid.SliceOfN(rapid.IntRange(0, 7), 1, 60).Draw(rt, "ops")
		for i, op := range ops {
			id := rapid.SampledFrom(ids).Draw(rt, "id")
			switch op {
			case 0:
				s.Open(id)
				if s.IsOpen(id) && s.Active() != id {
					rt.Fatalf("step %d: open(%s) left %q active", i, id, s.Active())
				}
			case 1:
				s.Close(id)
			case 2:
				s.Minimize(id)
			case 3:
				s.Maximize(id)
			case 4:
				s.Focus(id)
			case 5:
				s.BringToTop(id)
			case 6:
				s.HideAllExceptActive()
			case 7:
				s.MinimizeAll()
			}
			if err := s.Snapshot().Validate(); err != nil {
				rt.Fatalf("step %d (op %d on %s): %v", i, op, id, err)
			}
		}
	})
}

func TestValidateReportsViolations(t *testing.T) {
	cases := []struct {
		name string
		snap Snapshot
	}{
		{"minimized not open", Snapshot{Minimized: []WindowID{"a"}, Records: map[WindowID]Record{}}},
		{"active minimized", Snapshot{
			Open:    []WindowID{"a"},
			Active:  "a",
			ZOrder:  []WindowID{"a"},
			Records: map[WindowID]Record{"a": {ID: "a", Minimized: true}},
		}},
		{"duplicate z-order", Snapshot{
			Open:    []WindowID{"a"},
			ZOrder:  []WindowID{"a", "a"},
			Records: map[WindowID]Record{"a": {ID: "a"}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.snap.Validate(); err == nil {
				t.Fatalf("expected violation")
			}
		})
	}
}
