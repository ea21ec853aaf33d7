package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the bar.
type Styles struct {
	// Layout
	Bar    lipgloss.Style
	Window lipgloss.Style // Border drawn around decorated windows

	// Widgets
	Label lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Bar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Window: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
	}
}

// PlainStyles renders without colors. Decorated windows keep their border.
func PlainStyles() Styles {
	return Styles{
		Bar:    lipgloss.NewStyle(),
		Window: lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		Label:  lipgloss.NewStyle(),
	}
}
