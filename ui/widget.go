package ui

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/drake/boobar/config"
)

// Widget renders the content slot ref. References that do not resolve to a
// label render empty.
func Widget(ref *string, cfg config.Config, styles Styles) string {
	custom, ok := cfg.Resolve(ref)
	if !ok {
		return ""
	}
	text, ok := custom.Label()
	if !ok {
		return ""
	}
	return styles.Label.Render(text)
}

// VisibleLen returns the visible display width of a string (excluding ANSI codes).
func VisibleLen(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}
