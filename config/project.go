package config

// Top-level names recognized in a configuration document.
const (
	KeyWindows = "windows"
	KeyCustom  = "custom"
	KeyBoo     = "boo"
	KeyPoll    = "poll"
)

// TopLevel lists the document names the projector reads.
var TopLevel = []string{KeyWindows, KeyCustom, KeyBoo}

// Document is an evaluated configuration: top-level names mapped to plain Go
// values. Mappings are map[string]any, sequences []any.
type Document map[string]any

// field binds a document key to the optional string it fills in T.
type field[T any] struct {
	Key string
	Ref func(*T) **string
}

// schema describes how to project one mapping into T. Projection walks the
// schema, never the source keys, so unexpected keys are ignored.
type schema[T any] []field[T]

func (s schema[T]) project(m map[string]any) T {
	var out T
	for _, f := range s {
		str, ok := m[f.Key].(string)
		if !ok {
			continue
		}
		*f.Ref(&out) = &str
	}
	return out
}

var windowSchema = schema[Window]{
	{"width", func(w *Window) **string { return &w.Width }},
	{"height", func(w *Window) **string { return &w.Height }},
	{"win_type", func(w *Window) **string { return &w.WinType }},
	{"offset_x", func(w *Window) **string { return &w.OffsetX }},
	{"position", func(w *Window) **string { return &w.Position }},
	{"left_contents", func(w *Window) **string { return &w.LeftContents }},
	{"center_contents", func(w *Window) **string { return &w.CenterContents }},
	{"right_contents", func(w *Window) **string { return &w.RightContents }},
}

var customSchema = schema[Custom]{
	{"type", func(c *Custom) **string { return &c.Type }},
	{"content", func(c *Custom) **string { return &c.Content }},
}

// Project converts an evaluated document into a Config.
//
// Absent or non-mapping top-level names project to empty maps, non-mapping
// entries are skipped and non-string fields are left nil. Project never fails
// and does not modify doc.
func Project(doc Document) Config {
	return Config{
		Windows: projectTable(doc[KeyWindows], windowSchema),
		Customs: projectTable(doc[KeyCustom], customSchema),
		Boo:     projectBoo(doc[KeyBoo]),
	}
}

func projectTable[T any](v any, s schema[T]) map[string]T {
	out := make(map[string]T)
	table, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for name, entry := range table {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		out[name] = s.project(m)
	}
	return out
}

func projectBoo(v any) map[string]any {
	out := make(map[string]any)
	table, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for k, e := range table {
		out[k] = CloneValue(e)
	}
	return out
}
