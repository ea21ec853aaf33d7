// Package ui renders a configured window in the terminal.
//
// It is a stand-in for a graphical bar: one window, three regions, each
// holding at most one widget resolved from the window's content references.
package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/drake/boobar/config"
)

// Run shows the window called name until the user quits. When stdout is not
// a terminal it prints a single frame instead.
func Run(name string, window config.Window, cfg config.Config) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return Snapshot(os.Stdout, name, window, cfg, PlainStyles())
	}

	bar := NewBar(name, window, cfg, DefaultStyles())
	p := tea.NewProgram(NewModel(bar), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Snapshot writes one frame of the window at its configured width.
func Snapshot(w io.Writer, name string, window config.Window, cfg config.Config, styles Styles) error {
	bar := NewBar(name, window, cfg, styles)
	_, err := fmt.Fprintln(w, bar.View())
	return err
}
