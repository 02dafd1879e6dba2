package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines key bindings for the window and its error dialog.
type KeyMap struct {
	// Common
	Quit       key.Binding
	ToggleHelp key.Binding

	// Focus
	Next  key.Binding
	Prev  key.Binding
	Press key.Binding

	// Actions
	Toggle   key.Binding
	Minimize key.Binding

	// Error dialog
	Dismiss key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous"),
		),
		Press: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "start/stop"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize to tray"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "ok"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	return help.New()
}

// contextKeyMap adapts bindings to whether the error dialog is open.
type contextKeyMap struct {
	keys  KeyMap
	modal bool
}

// ForContext returns a key map implementing help.KeyMap.
func (k KeyMap) ForContext(modal bool) help.KeyMap {
	return contextKeyMap{keys: k, modal: modal}
}

// ShortHelp implements help.KeyMap.
func (c contextKeyMap) ShortHelp() []key.Binding {
	if c.modal {
		return []key.Binding{c.keys.Dismiss}
	}
	return []key.Binding{c.keys.Next, c.keys.Press, c.keys.Toggle, c.keys.ToggleHelp, c.keys.Quit}
}

// FullHelp implements help.KeyMap.
func (c contextKeyMap) FullHelp() [][]key.Binding {
	if c.modal {
		return [][]key.Binding{{c.keys.Dismiss}}
	}
	return [][]key.Binding{
		{c.keys.Next, c.keys.Prev, c.keys.Press},
		{c.keys.Toggle, c.keys.Minimize},
		{c.keys.ToggleHelp, c.keys.Quit},
	}
}
