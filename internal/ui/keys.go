package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level keybindings. Scrolling is
// handled by the viewport's own keymap, so it is not bound here.
type KeyMap struct {
	// Refresh trigger
	Refresh key.Binding

	// History navigation
	Previous key.Binding
	Current  key.Binding

	// Quit
	Quit key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Previous: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous briefing"),
		),
		Current: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "current briefing"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
