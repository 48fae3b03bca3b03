package wm

// Stack orders open window ids for painting and focus precedence. Each id
// appears at most once; the top of the stack is the last element.
type Stack struct {
	ids []WindowID
}

// Raise pushes id onto the top, moving it there if it is already present.
func (s *Stack) Raise(id WindowID) {
	s.Remove(id)
	s.ids = append(s.ids, id)
}

// Remove drops id from the stack. It reports whether id was present.
func (s *Stack) Remove(id WindowID) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.ids = append(s.ids[:idx], s.ids[idx+1:]...)
	return true
}

// FirstFromTop scans from the top down and returns the first id accepted
// by match.
func (s *Stack) FirstFromTop(match func(WindowID) bool) (WindowID, bool) {
	for i := len(s.ids) - 1; i >= 0; i-- {
		if match(s.ids[i]) {
			return s.ids[i], true
		}
	}
	return "", false
}

// Top returns the topmost id.
func (s *Stack) Top() (WindowID, bool) {
	if len(s.ids) == 0 {
		return "", false
	}
	return s.ids[len(s.ids)-1], true
}

// Contains reports whether id is on the stack.
func (s *Stack) Contains(id WindowID) bool {
	return s.indexOf(id) >= 0
}

// Len returns the number of ids on the stack.
func (s *Stack) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the stack, bottom first.
func (s *Stack) IDs() []WindowID {
	return cloneIDs(s.ids)
}

func (s *Stack) indexOf(id WindowID) int {
	for i, existing := range s.ids {
		if existing == id {
			return i
		}
	}
	return -1
}

func cloneIDs(ids []WindowID) []WindowID {
	if len(ids) == 0 {
		return nil
	}
	dup := make([]WindowID, len(ids))
	copy(dup, ids)
	return dup
}
