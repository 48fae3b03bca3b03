package menu

import (
	"github.com/atomicstack/termdesk/internal/shortcut"
	"github.com/atomicstack/termdesk/internal/wm"
)

// Decorate turns a static descriptor into renderable entries for snap. It has
// no side effects: the same inputs always produce the same entries.
//
// An entry is disabled when its item says so, when it needs an active window
// and there is none, or when nothing can be bound to it. Disabled entries
// carry no action.
func Decorate(desc Descriptor, snap wm.Snapshot, actions Actions) Menu {
	out := Menu{Label: desc.Label, Entries: make([]Entry, 0, len(desc.Items))}
	for _, item := range desc.Items {
		out.Entries = append(out.Entries, decorateItem(item, snap, actions))
	}
	return out
}

// WindowMenu decorates the Window descriptor and appends one row per open
// window, in open order.
func WindowMenu(desc Descriptor, snap wm.Snapshot, actions Actions) Menu {
	out := Decorate(desc, snap, actions)
	if len(snap.Open) == 0 {
		return out
	}
	if n := len(out.Entries); n > 0 && !out.Entries[n-1].Separator {
		out.Entries = append(out.Entries, Entry{Separator: true})
	}
	for _, id := range snap.Open {
		rec := snap.Records[id]
		label := rec.Title
		if label == "" {
			label = id
		}
		entry := Entry{
			ID:        id,
			Label:     label,
			Active:    id == snap.Active,
			Minimized: snap.IsMinimized(id),
		}
		if actions != nil {
			entry.Action = actions.ToggleWindow(id)
		}
		entry.Disabled = entry.Action == nil
		out.Entries = append(out.Entries, entry)
	}
	return out
}

func decorateItem(item Item, snap wm.Snapshot, actions Actions) Entry {
	if item.Separator {
		return Entry{Separator: true}
	}
	entry := Entry{ID: item.ID, Label: item.Label}
	if chord, err := shortcut.ParseChord(item.Shortcut); err == nil {
		entry.Chord = chord
	}
	if entry.Label == "" {
		entry.Label = item.ID
	}
	if actions != nil {
		switch {
		case item.Command != "":
			if action, ok := actions.Command(item.Command); ok {
				entry.Action = action
			}
		case item.ID != "":
			if action, ok := actions.OpenApp(item.ID); ok {
				entry.Action = action
			}
		}
	}
	disabled := item.Disabled || entry.Action == nil
	if item.RequiresWindow && snap.Active == "" {
		disabled = true
	}
	if disabled {
		entry.Disabled = true
		entry.Action = nil
	}
	return entry
}
