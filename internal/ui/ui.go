package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/idleguard/internal/app"
)

// NewProgram builds the bubbletea program and routes controller events
// into it. Events are sent from their own goroutine so a scheduler
// callback never waits on the UI loop.
func NewProgram(ctrl *app.Controller, opts Options, teaOpts ...tea.ProgramOption) *tea.Program {
	p := tea.NewProgram(New(ctrl, opts), teaOpts...)
	ctrl.SetNotifier(func(msg any) {
		go p.Send(msg)
	})
	return p
}
