package config

import (
	"sort"
	"strings"
)

// CustomPrefix introduces a reference to a custom widget.
const CustomPrefix = "custom."

// ParseRef extracts the custom widget name from a content reference.
func ParseRef(ref string) (name string, ok bool) {
	return strings.CutPrefix(ref, CustomPrefix)
}

// Resolve looks up the custom widget a content slot refers to.
// A nil slot, a reference of another form or an unknown name all resolve to
// nothing; the renderer leaves such slots empty.
func (c Config) Resolve(ref *string) (Custom, bool) {
	if ref == nil {
		return Custom{}, false
	}
	name, ok := ParseRef(*ref)
	if !ok {
		return Custom{}, false
	}
	custom, ok := c.Customs[name]
	return custom, ok
}

// Unresolved is a window content slot whose reference renders empty.
type Unresolved struct {
	Window string
	Slot   string
	Ref    string
}

var slotNames = [3]string{"left_contents", "center_contents", "right_contents"}

// Unresolved lists content slots that are set but will render empty, sorted
// by window name. Loading never fails because of them.
func (c Config) Unresolved() []Unresolved {
	names := make([]string, 0, len(c.Windows))
	for name := range c.Windows {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Unresolved
	for _, name := range names {
		for i, ref := range c.Windows[name].Slots() {
			if ref == nil {
				continue
			}
			custom, ok := c.Resolve(ref)
			if ok {
				if _, label := custom.Label(); label {
					continue
				}
			}
			out = append(out, Unresolved{Window: name, Slot: slotNames[i], Ref: *ref})
		}
	}
	return out
}
