package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/idleguard/internal/session"
	"github.com/stigoleg/idleguard/internal/util"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.quitting {
		return ""
	}
	st := m.ctrl.State()
	s := StyleFor(st.Theme)

	if m.modal != nil {
		return s.Window.Render(modalView(m, s))
	}
	if m.ctrl.Minimized() {
		return s.Window.Render(s.Label.Render("Minimized to tray. Use Show in the tray menu to restore."))
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("idleguard"))
	b.WriteString("\n\n")

	b.WriteString(s.Label.Render("Interval (seconds)"))
	b.WriteString("\n")
	input := s.InputBox
	switch {
	case st.Running:
		input = input.BorderForeground(s.DisabledItem.GetForeground())
	case m.focus == focusInterval:
		input = input.BorderForeground(s.SelectedItem.GetForeground())
	}
	field := m.interval.View()
	if st.Running {
		field = s.DisabledItem.Render(m.interval.Value())
	}
	b.WriteString(input.Render(field))
	b.WriteString("\n\n")

	b.WriteString(s.Label.Render("Simulate"))
	b.WriteString("\n")
	for _, f := range []focusItem{focusKeyboard, focusScroll, focusMove, focusSuperClean} {
		b.WriteString(checkboxView(m, s, st, f))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(buttonView(m, s, st.Running))
	b.WriteString("\n\n")

	b.WriteString(s.Label.Render("Theme "))
	b.WriteString(radioView(m, s, st.Theme, focusLight))
	b.WriteString("  ")
	b.WriteString(radioView(m, s, st.Theme, focusDark))
	b.WriteString("\n\n")

	b.WriteString(statusView(m, s, st))
	b.WriteString("\n\n")
	b.WriteString(s.Help.Render(m.help.View(m.keys.ForContext(false))))

	return s.Window.Render(b.String())
}

func cursor(m Model, f focusItem) string {
	if m.focus == f {
		return "> "
	}
	return "  "
}

func checkboxView(m Model, s Style, st session.State, f focusItem) string {
	modes := st.Modes
	mode, _ := f.mode()
	box := "[ ]"
	if modes.Has(mode) {
		box = "[x]"
	}
	line := cursor(m, f) + box + " " + mode.Label()
	switch {
	case st.Running, modes.Disabled(mode):
		return s.DisabledItem.Render(line)
	case m.focus == f:
		return s.SelectedItem.Render(line)
	default:
		return s.Item.Render(line)
	}
}

func radioView(m Model, s Style, current session.Theme, f focusItem) string {
	t, _ := f.theme()
	dot := "( )"
	if current == t {
		dot = "(•)"
	}
	line := dot + " " + f.String()
	if m.focus == f {
		return s.SelectedItem.Render(line)
	}
	return s.Item.Render(line)
}

func buttonView(m Model, s Style, running bool) string {
	label := "Start"
	if running {
		label = "Stop"
	}
	if m.focus == focusButton {
		return s.ActiveButton.Render(label)
	}
	return s.Button.Render(label)
}

// statusText is the status line without styling.
func statusText(m Model, st session.State) string {
	switch {
	case st.Running:
		return "Next action in: " + util.FormatCountdown(st.RemainingSeconds)
	case m.started:
		return "Stopped."
	default:
		return "Ready."
	}
}

func statusView(m Model, s Style, st session.State) string {
	style := s.Stopped
	if st.Running {
		style = s.Running
	}
	out := style.Render(statusText(m, st))
	if st.Running && st.LastError != "" {
		out += "\n" + s.Error.Render("Last action failed: "+st.LastError)
	}
	return out
}

func modalView(m Model, s Style) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Error.Bold(true).Render(m.modal.title),
		"",
		s.Item.Render(m.modal.body),
		"",
		s.Help.Render(m.help.View(m.keys.ForContext(true))),
	)
	box := s.Modal.Render(body)
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width-4, lipgloss.Center, box)
	}
	return box
}
