package menu

import "github.com/atomicstack/termdesk/internal/wm"

// TitleFunc resolves an app id to its display title.
type TitleFunc func(id string) (string, bool)

// Registry produces the top-level menus for the current app context: the
// base set, with the active app's own menus spliced over it.
type Registry struct {
	base      []Descriptor
	overrides map[string][]Descriptor
	title     TitleFunc
}

// NewRegistry builds a registry over base. title names the app menu.
func NewRegistry(base []Descriptor, title TitleFunc) *Registry {
	return &Registry{
		base:      cloneDescriptors(base),
		overrides: make(map[string][]Descriptor),
		title:     title,
	}
}

// SetOverride installs the specialised menus for an app. An empty list
// removes the override.
func (r *Registry) SetOverride(appID string, menus []Descriptor) {
	if len(menus) == 0 {
		delete(r.overrides, appID)
		return
	}
	r.overrides[appID] = cloneDescriptors(menus)
}

// Descriptors returns the static menus for the app context without
// decoration.
func (r *Registry) Descriptors(active wm.WindowID) []Descriptor {
	descs := Splice(r.base, r.overrides[active])
	appTitle := DefaultAppTitle
	if active != "" && r.title != nil {
		if title, ok := r.title(active); ok && title != "" {
			appTitle = title
		}
	}
	for i := range descs {
		if descs[i].Label == LabelApp {
			descs[i].Label = appTitle
		}
	}
	return descs
}

// Resolve returns the renderable menus for snap. The Window menu lists every
// open window.
func (r *Registry) Resolve(snap wm.Snapshot, actions Actions) []Menu {
	descs := r.Descriptors(snap.Active)
	menus := make([]Menu, 0, len(descs))
	for _, desc := range descs {
		if desc.Label == LabelWindow {
			menus = append(menus, WindowMenu(desc, snap, actions))
			continue
		}
		menus = append(menus, Decorate(desc, snap, actions))
	}
	return menus
}

// Splice replaces base menus with same-labelled overrides in place. Override
// labels without a base counterpart are inserted just before the Window
// menu, or appended when there is none. Neither input is modified.
func Splice(base, overrides []Descriptor) []Descriptor {
	out := cloneDescriptors(base)
	for _, o := range overrides {
		replacement := Descriptor{Label: o.Label, Items: cloneItems(o.Items)}
		if idx := indexOfLabel(out, o.Label); idx >= 0 {
			out[idx] = replacement
			continue
		}
		idx := indexOfLabel(out, LabelWindow)
		if idx < 0 {
			out = append(out, replacement)
			continue
		}
		out = append(out, Descriptor{})
		copy(out[idx+1:], out[idx:])
		out[idx] = replacement
	}
	return out
}

func indexOfLabel(descs []Descriptor, label string) int {
	for i, d := range descs {
		if d.Label == label {
			return i
		}
	}
	return -1
}
