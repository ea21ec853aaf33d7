// Package config holds the typed model of a boobar configuration and the
// rules for projecting a loosely-typed document into it.
//
// The package knows nothing about Lua. Loaders convert whatever they evaluate
// into a Document (plain Go maps) and hand it to Project.
package config

import (
	"strconv"
	"strings"
)

// Renderer defaults for fields a window leaves unset.
const (
	DefaultWidth   = 600
	DefaultHeight  = 60
	DefaultWinType = WinFloat
)

// WinType is the kind of top-level window a bar is rendered into.
type WinType string

const (
	WinDock   WinType = "dock"
	WinFloat  WinType = "float"
	WinWindow WinType = "window"
)

// Config is the typed projection of a configuration document.
// Windows and Customs are frozen once loading finishes; Boo is a snapshot of
// the user scratch namespace at load time.
type Config struct {
	Windows map[string]Window
	Customs map[string]Custom
	Boo     map[string]any
}

// Window describes one bar. Every field is optional and carried verbatim
// from the document; nil means the key was absent or not a string.
type Window struct {
	Width          *string
	Height         *string
	WinType        *string
	OffsetX        *string
	Position       *string
	LeftContents   *string
	CenterContents *string
	RightContents  *string
}

// Custom describes a named custom widget.
type Custom struct {
	Type    *string
	Content *string
}

// Size returns the window size in pixels, falling back to the defaults for
// absent or unparsable values.
func (w Window) Size() (width, height int) {
	return parseSize(w.Width, DefaultWidth), parseSize(w.Height, DefaultHeight)
}

func parseSize(v *string, def int) int {
	if v == nil {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(*v))
	if err != nil {
		return def
	}
	return n
}

// Type returns the normalized window type. Matching ignores case and
// surrounding whitespace; unknown values are treated as float.
func (w Window) Type() WinType {
	if w.WinType == nil {
		return DefaultWinType
	}
	switch t := WinType(strings.ToLower(strings.TrimSpace(*w.WinType))); t {
	case WinDock, WinFloat, WinWindow:
		return t
	default:
		return DefaultWinType
	}
}

// Decorated reports whether the window manager should draw decorations.
func (w Window) Decorated() bool {
	return w.Type() == WinWindow
}

// Slots returns the three content references in left, center, right order.
func (w Window) Slots() [3]*string {
	return [3]*string{w.LeftContents, w.CenterContents, w.RightContents}
}

// Label returns the text of a label widget. ok is false when the widget is
// not a label, in which case it renders empty.
func (c Custom) Label() (text string, ok bool) {
	if c.Type == nil || *c.Type != "label" {
		return "", false
	}
	if c.Content == nil {
		return "missing", true
	}
	return *c.Content, true
}

// Clone returns a copy whose maps can be handed to another owner.
// String pointers are shared; the strings behind them are immutable.
func (c Config) Clone() Config {
	out := Config{
		Windows: make(map[string]Window, len(c.Windows)),
		Customs: make(map[string]Custom, len(c.Customs)),
		Boo:     make(map[string]any, len(c.Boo)),
	}
	for k, v := range c.Windows {
		out.Windows[k] = v
	}
	for k, v := range c.Customs {
		out.Customs[k] = v
	}
	for k, v := range c.Boo {
		out.Boo[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep-copies the container types produced by loaders
// (map[string]any and []any). Scalars and opaque values are returned as is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = CloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = CloneValue(e)
		}
		return s
	default:
		return v
	}
}
