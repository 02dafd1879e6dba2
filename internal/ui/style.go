// Package ui provides the terminal window: interval field, mode checkboxes,
// Start/Stop button, theme switch and status line.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/idleguard/internal/session"
)

// Colors defines one theme's palette.
type Colors struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Special    lipgloss.Color
	Error      lipgloss.Color
}

var lightColors = Colors{
	Background: lipgloss.Color("#FAFAFA"),
	Text:       lipgloss.Color("#1A1A1A"),
	Subtle:     lipgloss.Color("#8A8A8A"),
	Highlight:  lipgloss.Color("#874BFD"),
	Special:    lipgloss.Color("#2E8B57"),
	Error:      lipgloss.Color("#D00000"),
}

var darkColors = Colors{
	Background: lipgloss.Color("#1E1E2E"),
	Text:       lipgloss.Color("#E6E6E6"),
	Subtle:     lipgloss.Color("#6C6C7A"),
	Highlight:  lipgloss.Color("#7D56F4"),
	Special:    lipgloss.Color("#73F59F"),
	Error:      lipgloss.Color("#FF4040"),
}

// Style represents a collection of styles used in the application
type Style struct {
	Window       lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	DisabledItem lipgloss.Style
	InputBox     lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
	Running      lipgloss.Style
	Stopped      lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
	Modal        lipgloss.Style
}

// StyleFor returns the style set for a theme.
func StyleFor(t session.Theme) Style {
	c := lightColors
	if t == session.ThemeDark {
		c = darkColors
	}

	base := lipgloss.NewStyle().Foreground(c.Text)

	return Style{
		Window: lipgloss.NewStyle().
			Background(c.Background).
			Foreground(c.Text).
			Padding(1, 2),

		Title: base.
			Bold(true).
			Foreground(c.Highlight),

		Label: base.
			Foreground(c.Subtle),

		Item: base,

		SelectedItem: base.
			Bold(true).
			Foreground(c.Highlight),

		DisabledItem: base.
			Foreground(c.Subtle).
			Strikethrough(true),

		InputBox: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Subtle).
			Padding(0, 1),

		Button: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Subtle).
			Padding(0, 2),

		ActiveButton: base.
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Highlight).
			Foreground(c.Highlight).
			Padding(0, 2),

		Running: base.
			Bold(true).
			Foreground(c.Special),

		Stopped: base.
			Foreground(c.Subtle),

		Help: base.
			Foreground(c.Subtle),

		Error: base.
			Foreground(c.Error),

		Modal: base.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(c.Error).
			Padding(1, 3),
	}
}
