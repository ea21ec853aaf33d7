package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/boobar/config"
)

func ptr(s string) *string { return &s }

func testConfig() config.Config {
	return config.Config{
		Customs: map[string]config.Custom{
			"l":       {Type: ptr("label"), Content: ptr("L")},
			"c":       {Type: ptr("label"), Content: ptr("C")},
			"r":       {Type: ptr("label"), Content: ptr("R")},
			"empty":   {Type: ptr("label")},
			"button":  {Type: ptr("button"), Content: ptr("B")},
			"long":    {Type: ptr("label"), Content: ptr(strings.Repeat("x", 100))},
			"unicode": {Type: ptr("label"), Content: ptr("時計")},
		},
	}
}

func TestColumns(t *testing.T) {
	assert.Equal(t, 75, Columns(config.Window{}))
	assert.Equal(t, 20, Columns(config.Window{Width: ptr("160")}))
	assert.Equal(t, 1, Columns(config.Window{Width: ptr("3")}))
}

func TestBarTwoPart(t *testing.T) {
	w := config.Window{Width: ptr("160"), LeftContents: ptr("custom.l"), RightContents: ptr("custom.r")}
	bar := NewBar("main", w, testConfig(), PlainStyles())

	assert.Equal(t, "L"+strings.Repeat(" ", 18)+"R", bar.View())
	assert.Equal(t, 1, bar.Height())
}

func TestBarThreePart(t *testing.T) {
	w := config.Window{
		Width:          ptr("160"),
		LeftContents:   ptr("custom.l"),
		CenterContents: ptr("custom.c"),
		RightContents:  ptr("custom.r"),
	}
	bar := NewBar("main", w, testConfig(), PlainStyles())

	assert.Equal(t, "L"+strings.Repeat(" ", 8)+"C"+strings.Repeat(" ", 9)+"R", bar.View())
}

func TestBarUnresolvedSlotsAreEmpty(t *testing.T) {
	w := config.Window{
		Width:          ptr("80"),
		LeftContents:   ptr("custom.does_not_exist"),
		CenterContents: ptr("custom.button"),
		RightContents:  ptr("clock"),
	}
	bar := NewBar("main", w, testConfig(), PlainStyles())

	left, center, right := bar.Regions()
	assert.Empty(t, left)
	assert.Empty(t, center)
	assert.Empty(t, right)
	assert.Equal(t, strings.Repeat(" ", 10), bar.View())
}

func TestBarMissingContent(t *testing.T) {
	w := config.Window{Width: ptr("80"), LeftContents: ptr("custom.empty")}
	bar := NewBar("main", w, testConfig(), PlainStyles())

	left, _, _ := bar.Regions()
	assert.Equal(t, "missing", left)
}

func TestBarTruncates(t *testing.T) {
	w := config.Window{Width: ptr("80"), LeftContents: ptr("custom.long"), RightContents: ptr("custom.r")}
	bar := NewBar("main", w, testConfig(), PlainStyles())

	assert.Equal(t, strings.Repeat("x", 10), bar.View())
}

func TestBarWideRunes(t *testing.T) {
	w := config.Window{Width: ptr("80"), RightContents: ptr("custom.unicode")}
	bar := NewBar("main", w, testConfig(), PlainStyles())

	assert.Equal(t, strings.Repeat(" ", 6)+"時計", bar.View())
	assert.Equal(t, 10, VisibleLen(bar.View()))
}

func TestBarDecorated(t *testing.T) {
	w := config.Window{Width: ptr("160"), WinType: ptr(" Window "), LeftContents: ptr("custom.l")}
	bar := NewBar("main", w, testConfig(), PlainStyles())

	lines := strings.Split(bar.View(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 3, bar.Height())
	for _, line := range lines {
		assert.Equal(t, 20, VisibleLen(line))
	}
	assert.Contains(t, lines[1], "L")
}

func TestBarOffset(t *testing.T) {
	w := config.Window{Width: ptr("80"), OffsetX: ptr("16"), LeftContents: ptr("custom.l")}
	bar := NewBar("main", w, testConfig(), PlainStyles())
	assert.True(t, strings.HasPrefix(bar.View(), "  L"))

	w.OffsetX = ptr("left")
	bar = NewBar("main", w, testConfig(), PlainStyles())
	assert.True(t, strings.HasPrefix(bar.View(), "L"))
}

func TestBarSetWidth(t *testing.T) {
	bar := NewBar("main", config.Window{Width: ptr("160")}, testConfig(), PlainStyles())

	bar.SetWidth(10)
	assert.Equal(t, 10, bar.Width())
	bar.SetWidth(500)
	assert.Equal(t, 20, bar.Width())
	bar.SetWidth(0)
	assert.Equal(t, 1, bar.Width())
}

func TestBarBottom(t *testing.T) {
	assert.False(t, NewBar("a", config.Window{}, testConfig(), PlainStyles()).Bottom())
	assert.False(t, NewBar("a", config.Window{Position: ptr("top")}, testConfig(), PlainStyles()).Bottom())
	assert.True(t, NewBar("a", config.Window{Position: ptr(" Bottom")}, testConfig(), PlainStyles()).Bottom())
}

func TestSnapshot(t *testing.T) {
	var buf bytes.Buffer
	w := config.Window{Width: ptr("80"), LeftContents: ptr("custom.l")}

	require.NoError(t, Snapshot(&buf, "main", w, testConfig(), PlainStyles()))
	assert.Equal(t, "L"+strings.Repeat(" ", 9)+"\n", buf.String())
}
