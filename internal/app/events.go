package app

import "github.com/stigoleg/idleguard/internal/scheduler"

// Messages delivered to the UI loop. They are plain values so any event
// loop can consume them.
type (
	// FiredMsg reports a completed action burst.
	FiredMsg struct{ Report scheduler.Report }
	// TickMsg carries the countdown after each second.
	TickMsg struct{ Remaining int }
	// ToggleMsg asks the UI to press Start/Stop, e.g. from the hotkey.
	ToggleMsg struct{}
	// RestoreMsg asks the UI to leave the tray.
	RestoreMsg struct{}
	// QuitMsg asks the UI to exit.
	QuitMsg struct{}
)
