package wm

import "fmt"

// Snapshot is an immutable copy of the store state. Open, Minimized and
// Maximized are in open order; ZOrder is bottom first, so painting in ZOrder
// leaves the topmost window drawn last.
type Snapshot struct {
	Open      []WindowID          `json:"open"`
	Active    WindowID            `json:"active"`
	Minimized []WindowID          `json:"minimized"`
	Maximized []WindowID          `json:"maximized"`
	ZOrder    []WindowID          `json:"zOrder"`
	Records   map[WindowID]Record `json:"records"`
}

// IsOpen reports whether id is open in the snapshot.
func (s Snapshot) IsOpen(id WindowID) bool {
	_, ok := s.Records[id]
	return ok
}

// IsMinimized reports whether id is minimized in the snapshot.
func (s Snapshot) IsMinimized(id WindowID) bool {
	rec, ok := s.Records[id]
	return ok && rec.Minimized
}

// IsMaximized reports whether id is maximized in the snapshot.
func (s Snapshot) IsMaximized(id WindowID) bool {
	rec, ok := s.Records[id]
	return ok && rec.Maximized
}

// Visible returns the non-minimized windows in paint order.
func (s Snapshot) Visible() []Record {
	out := make([]Record, 0, len(s.ZOrder))
	for _, id := range s.ZOrder {
		rec, ok := s.Records[id]
		if !ok || rec.Minimized {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Validate checks the store invariants and describes the first violation.
func (s Snapshot) Validate() error {
	open := make(map[WindowID]struct{}, len(s.Open))
	for _, id := range s.Open {
		if _, dup := open[id]; dup {
			return fmt.Errorf("window %q opened twice", id)
		}
		open[id] = struct{}{}
		if _, ok := s.Records[id]; !ok {
			return fmt.Errorf("open window %q has no record", id)
		}
	}
	if len(s.Records) != len(open) {
		return fmt.Errorf("%d records for %d open windows", len(s.Records), len(open))
	}
	for _, id := range s.Minimized {
		if _, ok := open[id]; !ok {
			return fmt.Errorf("minimized window %q is not open", id)
		}
	}
	for _, id := range s.Maximized {
		if _, ok := open[id]; !ok {
			return fmt.Errorf("maximized window %q is not open", id)
		}
	}
	if len(s.ZOrder) != len(open) {
		return fmt.Errorf("z-order holds %d ids for %d open windows", len(s.ZOrder), len(open))
	}
	seen := make(map[WindowID]struct{}, len(s.ZOrder))
	for _, id := range s.ZOrder {
		if _, ok := open[id]; !ok {
			return fmt.Errorf("z-order holds closed window %q", id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("z-order holds %q twice", id)
		}
		seen[id] = struct{}{}
	}
	if s.Active != "" {
		if _, ok := open[s.Active]; !ok {
			return fmt.Errorf("active window %q is not open", s.Active)
		}
		if s.IsMinimized(s.Active) {
			return fmt.Errorf("active window %q is minimized", s.Active)
		}
	}
	return nil
}
