package ui

import (
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/idleguard/internal/app"
	"github.com/stigoleg/idleguard/internal/session"
	"github.com/stigoleg/idleguard/internal/util"
)

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case app.TickMsg, app.FiredMsg:
		// The view reads a fresh snapshot; nothing to store.
		return m, nil

	case app.ToggleMsg:
		return m.toggle(), nil

	case app.RestoreMsg:
		if err := m.ctrl.Restore(); err != nil {
			log.Printf("ui: restore window: %v", err)
		}
		return m, nil

	case app.QuitMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.modal != nil {
			return m.updateModal(msg)
		}
		return m.updateKey(msg)
	}

	if m.focus == focusInterval && !m.ctrl.Running() {
		var cmd tea.Cmd
		m.interval, cmd = m.interval.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Dismiss):
		m.modal = nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m.setFocus(m.focus.next())

	case key.Matches(msg, m.keys.Prev):
		return m.setFocus(m.focus.prev())

	case key.Matches(msg, m.keys.Toggle):
		return m.toggle(), nil

	case key.Matches(msg, m.keys.Minimize):
		return m.minimize(), nil

	case key.Matches(msg, m.keys.Press):
		return m.press(msg), nil
	}

	if m.focus != focusInterval || m.ctrl.Running() {
		return m, nil
	}
	if msg.Type == tea.KeyRunes && !util.IsDigits(string(msg.Runes)) {
		return m, nil
	}
	var cmd tea.Cmd
	m.interval, cmd = m.interval.Update(msg)
	return m, cmd
}

func (m Model) setFocus(f focusItem) (Model, tea.Cmd) {
	m.focus = f
	if f == focusInterval {
		return m, m.interval.Focus()
	}
	m.interval.Blur()
	return m, nil
}

// press activates the focused control.
func (m Model) press(msg tea.KeyMsg) Model {
	if mode, ok := m.focus.mode(); ok {
		if m.ctrl.Running() || m.ctrl.Modes().Disabled(mode) {
			return m
		}
		m.ctrl.ToggleMode(mode)
		return m
	}
	if t, ok := m.focus.theme(); ok {
		m.ctrl.SetTheme(t)
		return m
	}
	switch m.focus {
	case focusButton:
		return m.toggle()
	case focusInterval:
		// Enter in the field acts as the default button; space is not a digit.
		if msg.Type == tea.KeyEnter {
			return m.toggle()
		}
	}
	return m
}

// toggle behaves exactly like the Start/Stop button.
func (m Model) toggle() Model {
	err := m.ctrl.Toggle(m.interval.Value())
	if err != nil {
		log.Printf("ui: start/stop: %v", err)
		m.modal = dialogFor(err)
		// A hotkey toggle can fail while the window sits in the tray.
		if err := m.ctrl.Restore(); err != nil {
			log.Printf("ui: restore window: %v", err)
		}
		return m
	}
	m.started = true
	return m
}

func (m Model) minimize() Model {
	if err := m.ctrl.Minimize(); err != nil {
		log.Printf("ui: minimize: %v", err)
		m.modal = &dialog{title: "Tray Unavailable", body: err.Error()}
	}
	return m
}

func dialogFor(err error) *dialog {
	switch {
	case errors.Is(err, session.ErrInvalidInterval), errors.Is(err, session.ErrIntervalTooSmall):
		return &dialog{
			title: "Invalid Input",
			body:  "Please enter a valid number for the interval (minimum 10 seconds).",
		}
	case errors.Is(err, session.ErrNoModeSelected):
		return &dialog{
			title: "No Option Selected",
			body:  "Please select at least one option (Keyboard, Mouse Scroll, Mouse Move or Super Clean).",
		}
	default:
		return &dialog{title: "Error", body: err.Error()}
	}
}
