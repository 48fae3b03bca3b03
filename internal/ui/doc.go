// Package ui contains the Bubble Tea program that paints the desktop.
//
// The model owns no desktop state. Every message is routed through a typed
// handler registry to a focused function (keys, mouse, resize, backend
// events), which turns it into shell input; the shell mutates the window
// store synchronously and View re-reads a snapshot to paint.
//
// Painting happens on a cell canvas, bottom to top: desktop background,
// windows in z-order, menu bar, dock, the open dropdown, then Spotlight.
// Mouse hit-testing walks the same layout in reverse so the topmost
// surface under the pointer wins.
//
// Keyboard input is offered to the shell's shortcut dispatcher first. Keys
// it does not consume drive menu navigation (F10, arrows, Enter, Esc) or
// the Spotlight text field.
package ui
