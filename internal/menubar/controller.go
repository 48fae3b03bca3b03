// Package menubar tracks which top-level menu is open.
//
// The controller is a two-state machine, closed or open(label). A click arms
// the bar; once a menu is open, hovering another label switches to it. Hover
// alone never opens anything.
package menubar

import (
	"github.com/atomicstack/termdesk/internal/logging/events"
	"github.com/atomicstack/termdesk/internal/menu"
)

// State is a snapshot of the controller.
type State struct {
	Open  bool
	Label string
}

// String renders the state the way traces record it.
func (s State) String() string {
	if !s.Open {
		return "closed"
	}
	return "open(" + s.Label + ")"
}

// Controller is the menu-bar state machine.
type Controller struct {
	state State
}

// New returns a closed controller.
func New() *Controller {
	return &Controller{}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports whether any menu is open.
func (c *Controller) IsOpen() bool {
	return c.state.Open
}

// OpenLabel returns the open menu label, or "" when closed.
func (c *Controller) OpenLabel() string {
	return c.state.Label
}

// Click toggles label: it opens when closed or when another menu is open, and
// closes when label is already open.
func (c *Controller) Click(label string) {
	if c.state.Open && c.state.Label == label {
		c.transition("click", State{})
		return
	}
	c.transition("click", State{Open: true, Label: label})
}

// Hover follows the pointer to label while a menu is open.
func (c *Controller) Hover(label string) {
	if !c.state.Open || c.state.Label == label {
		return
	}
	c.transition("hover", State{Open: true, Label: label})
}

// ClickOutside closes the open menu.
func (c *Controller) ClickOutside() {
	if !c.state.Open {
		return
	}
	c.transition("outside", State{})
}

// Close closes the bar without a pointer event, e.g. on Escape.
func (c *Controller) Close() {
	if !c.state.Open {
		return
	}
	c.transition("close", State{})
}

// Select runs entry's action and closes the bar. Separators, disabled
// entries and entries without an action cause no transition. It reports
// whether the action ran.
func (c *Controller) Select(entry menu.Entry) bool {
	if !c.state.Open {
		events.MenuBar.Ignored("", entry.Label, "closed")
		return false
	}
	if !entry.Selectable() {
		events.MenuBar.Ignored(c.state.Label, entry.Label, "disabled")
		return false
	}
	events.MenuBar.Select(c.state.Label, entry.Label)
	entry.Action()
	// the action may have closed the bar itself, e.g. Lock Screen
	if c.state.Open {
		c.transition("select", State{})
	}
	return true
}

func (c *Controller) transition(trigger string, next State) {
	prev := c.state
	c.state = next
	events.MenuBar.Transition(trigger, prev.String(), next.String())
}
