package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings of the bar program.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the Bubble Tea model hosting a single bar.
type Model struct {
	bar    *Bar
	keys   KeyMap
	height int
}

// NewModel creates a model for bar.
func NewModel(bar *Bar) Model {
	return Model{
		bar:  bar,
		keys: DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.SetWidth(msg.Width)
		m.height = msg.Height
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.bar.View()
	if !m.bar.Bottom() {
		return view
	}
	// Push the bar to the last lines of the screen
	pad := m.height - m.bar.Height()
	if pad < 1 {
		return view
	}
	return strings.Repeat("\n", pad) + view
}
