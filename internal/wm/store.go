package wm

// Store is the single authoritative window lifecycle manager. It owns every
// Record plus the z-order and arbitrates which window is active.
//
// Every operation is total: unknown ids are silently ignored and nothing
// returns an error. The store is not safe for concurrent use; the shell
// serialises all input on one goroutine.
type Store struct {
	resolver Resolver
	records  map[WindowID]*Record
	open     []WindowID
	stack    Stack
	active   WindowID
}

// NewStore creates an empty store that seeds new windows from resolver.
func NewStore(resolver Resolver) *Store {
	return &Store{
		resolver: resolver,
		records:  make(map[WindowID]*Record),
	}
}

// Open creates the window on first use, restores it if minimized, and makes
// it the active, topmost window. Reopening an open window only refocuses it.
func (s *Store) Open(id WindowID) {
	rec, ok := s.records[id]
	if !ok {
		if s.resolver == nil {
			return
		}
		defaults, known := s.resolver.Defaults(id)
		if !known {
			return
		}
		rec = newRecord(id, defaults)
		s.records[id] = rec
		s.open = append(s.open, id)
	}
	rec.Minimized = false
	s.activate(id)
}

// Close discards the window. If it was active, focus passes to the topmost
// remaining visible window.
func (s *Store) Close(id WindowID) {
	if _, ok := s.records[id]; !ok {
		return
	}
	delete(s.records, id)
	s.open = removeID(s.open, id)
	s.stack.Remove(id)
	if s.active == id {
		s.resolveActive()
	}
}

// Minimize toggles the minimized flag. Restoring activates and raises the
// window; minimizing the active window passes focus on.
func (s *Store) Minimize(id WindowID) {
	rec, ok := s.records[id]
	if !ok {
		return
	}
	if rec.Minimized {
		rec.Minimized = false
		s.activate(id)
		return
	}
	rec.Minimized = true
	if s.active == id {
		s.resolveActive()
	}
}

// Maximize toggles the maximized flag without touching the minimized flag.
// The window is raised; it becomes active unless it is minimized, since a
// minimized window can never hold focus.
func (s *Store) Maximize(id WindowID) {
	rec, ok := s.records[id]
	if !ok {
		return
	}
	rec.Maximized = !rec.Maximized
	if rec.Minimized {
		s.stack.Raise(id)
		return
	}
	s.activate(id)
}

// Focus activates and raises an open, visible window. Focusing a minimized
// window does nothing; use Minimize or Open to restore it.
func (s *Store) Focus(id WindowID) {
	rec, ok := s.records[id]
	if !ok || rec.Minimized {
		return
	}
	s.activate(id)
}

// BringToTop moves id to the top of the z-order without changing any flag or
// the active window.
func (s *Store) BringToTop(id WindowID) {
	if _, ok := s.records[id]; !ok {
		return
	}
	s.stack.Raise(id)
}

// HideAllExceptActive minimizes every window other than the active one.
func (s *Store) HideAllExceptActive() {
	for _, id := range s.open {
		if id == s.active {
			continue
		}
		s.records[id].Minimized = true
	}
}

// MinimizeAll minimizes every window and clears the active window.
func (s *Store) MinimizeAll() {
	for _, id := range s.open {
		s.records[id].Minimized = true
	}
	s.active = ""
}

// Move sets the window origin. Flags, focus and z-order are untouched.
func (s *Store) Move(id WindowID, pos Point) {
	if rec, ok := s.records[id]; ok {
		rec.Position = pos
	}
}

// Resize sets the window extent. Non-positive dimensions are ignored.
func (s *Store) Resize(id WindowID, size Size) {
	rec, ok := s.records[id]
	if !ok || size.Width <= 0 || size.Height <= 0 {
		return
	}
	rec.Size = size
}

// Active returns the active window id, or "" when no window has focus.
func (s *Store) Active() WindowID {
	return s.active
}

// IsOpen reports whether id has a live record.
func (s *Store) IsOpen(id WindowID) bool {
	_, ok := s.records[id]
	return ok
}

// IsMinimized reports whether id is open and minimized.
func (s *Store) IsMinimized(id WindowID) bool {
	rec, ok := s.records[id]
	return ok && rec.Minimized
}

// IsMaximized reports whether id is open and maximized.
func (s *Store) IsMaximized(id WindowID) bool {
	rec, ok := s.records[id]
	return ok && rec.Maximized
}

// Record returns a copy of the record for id.
func (s *Store) Record(id WindowID) (Record, bool) {
	rec, ok := s.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Snapshot captures the current state for the presentation layer.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Open:    cloneIDs(s.open),
		Active:  s.active,
		ZOrder:  s.stack.IDs(),
		Records: make(map[WindowID]Record, len(s.records)),
	}
	for _, id := range s.open {
		rec := s.records[id]
		snap.Records[id] = *rec
		if rec.Minimized {
			snap.Minimized = append(snap.Minimized, id)
		}
		if rec.Maximized {
			snap.Maximized = append(snap.Maximized, id)
		}
	}
	return snap
}

func (s *Store) activate(id WindowID) {
	s.active = id
	s.stack.Raise(id)
}

// resolveActive applies the focus-resolution rule: the topmost window that is
// open and not minimized becomes active, otherwise nothing is.
func (s *Store) resolveActive() {
	next, ok := s.stack.FirstFromTop(func(id WindowID) bool {
		rec, open := s.records[id]
		return open && !rec.Minimized
	})
	if !ok {
		s.active = ""
		return
	}
	s.active = next
}

func removeID(ids []WindowID, id WindowID) []WindowID {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
