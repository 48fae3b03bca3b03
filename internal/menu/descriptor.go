package menu

// Item is the static description of one menu row. Runtime flags such as
// "active" or "minimized" never live here; see Entry.
type Item struct {
	ID             string `yaml:"id,omitempty"`
	Label          string `yaml:"label,omitempty"`
	Shortcut       string `yaml:"shortcut,omitempty"`
	Command        string `yaml:"command,omitempty"`
	Disabled       bool   `yaml:"disabled,omitempty"`
	RequiresWindow bool   `yaml:"requires_window,omitempty"`
	Separator      bool   `yaml:"separator,omitempty"`
}

// Descriptor is a static top-level menu: a label and its rows.
type Descriptor struct {
	Label string `yaml:"label"`
	Items []Item `yaml:"items"`
}

// Separator returns a separator row.
func Separator() Item {
	return Item{Separator: true}
}

func cloneDescriptors(descs []Descriptor) []Descriptor {
	if len(descs) == 0 {
		return nil
	}
	out := make([]Descriptor, len(descs))
	for i, d := range descs {
		out[i] = Descriptor{Label: d.Label, Items: cloneItems(d.Items)}
	}
	return out
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
