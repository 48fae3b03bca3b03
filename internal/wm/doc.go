// Package wm implements the desktop window lifecycle: opening, closing,
// minimizing, maximizing and focusing app windows, plus the z-order that
// decides paint order and focus precedence.
//
// Store is the only owner of window state. Consumers read a Snapshot after
// every change and never hold on to records:
//
//	store := wm.NewStore(catalog)
//	store.Open("notes")
//	store.Open("calendar")
//	store.Minimize("calendar") // notes becomes active again
//	snap := store.Snapshot()
//
// When the active window closes or minimizes, the focus-resolution rule picks
// the topmost remaining window that is open and not minimized, or leaves no
// window active.
package wm
