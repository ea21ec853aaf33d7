package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/drake/boobar/config"
)

// cellWidth is the number of pixels one terminal column stands for when a
// window size is mapped onto the terminal.
const cellWidth = 8

// Columns returns the window width in terminal columns.
func Columns(w config.Window) int {
	width, _ := w.Size()
	return max(width/cellWidth, 1)
}

// Bar renders one window with left/center/right regions.
type Bar struct {
	name   string
	window config.Window
	cfg    config.Config
	styles Styles
	width  int
}

// NewBar creates a new bar renderer for the window called name.
func NewBar(name string, window config.Window, cfg config.Config, styles Styles) *Bar {
	return &Bar{
		name:   name,
		window: window,
		cfg:    cfg,
		styles: styles,
		width:  Columns(window),
	}
}

// Name returns the window name.
func (b *Bar) Name() string { return b.name }

// Regions resolves the three content slots.
func (b *Bar) Regions() (left, center, right string) {
	slots := b.window.Slots()
	return Widget(slots[0], b.cfg, b.styles),
		Widget(slots[1], b.cfg, b.styles),
		Widget(slots[2], b.cfg, b.styles)
}

// View renders the bar at the current width.
func (b *Bar) View() string {
	inner := b.width
	if b.window.Decorated() {
		inner = max(inner-2, 1)
	}

	left, center, right := b.Regions()
	line := b.styles.Bar.Render(layout(inner, left, center, right))

	indent := b.indent()
	if b.window.Decorated() {
		line = b.styles.Window.Width(inner).Render(line)
	}
	if indent == "" {
		return line
	}
	lines := strings.Split(line, "\n")
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// layout places left flush left, center in the middle and right flush right,
// keeping at least one space between neighbours and cutting at width.
func layout(width int, left, center, right string) string {
	leftLen := VisibleLen(left)
	centerLen := VisibleLen(center)
	rightLen := VisibleLen(right)

	var line string
	if center != "" {
		// Three-part layout
		leftPad := (width-centerLen)/2 - leftLen
		if leftPad < 1 {
			leftPad = 1
		}
		rightPad := width - leftLen - leftPad - centerLen - rightLen
		if rightPad < 1 {
			rightPad = 1
		}
		line = left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
	} else {
		// Two-part layout
		pad := width - leftLen - rightLen
		if pad < 1 {
			pad = 1
		}
		line = left + strings.Repeat(" ", pad) + right
	}

	return ansi.Truncate(line, width, "")
}

// indent turns a pixel offset_x into leading spaces. Non-numeric offsets
// are ignored.
func (b *Bar) indent() string {
	if b.window.OffsetX == nil {
		return ""
	}
	px, err := strconv.Atoi(strings.TrimSpace(*b.window.OffsetX))
	if err != nil || px <= 0 {
		return ""
	}
	return strings.Repeat(" ", px/cellWidth)
}

// SetWidth sets the width in columns, capped to the window's own width.
func (b *Bar) SetWidth(w int) {
	b.width = max(min(w, Columns(b.window)), 1)
}

// Width returns the current width in columns.
func (b *Bar) Width() int { return b.width }

// Height returns the number of terminal lines the bar occupies.
func (b *Bar) Height() int {
	if b.window.Decorated() {
		return 3
	}
	return 1
}

// Bottom reports whether the window asks to sit at the bottom of the screen.
func (b *Bar) Bottom() bool {
	return b.window.Position != nil && strings.EqualFold(strings.TrimSpace(*b.window.Position), "bottom")
}
