package ui

import "github.com/stigoleg/idleguard/internal/session"

// focusItem is a focusable control, in tab order.
type focusItem int

const (
	focusInterval focusItem = iota
	focusKeyboard
	focusScroll
	focusMove
	focusSuperClean
	focusButton
	focusLight
	focusDark

	focusCount
)

func (f focusItem) String() string {
	switch f {
	case focusInterval:
		return "Interval"
	case focusKeyboard, focusScroll, focusMove, focusSuperClean:
		m, _ := f.mode()
		return m.Label()
	case focusButton:
		return "Button"
	case focusLight:
		return "Light"
	case focusDark:
		return "Dark"
	default:
		return "Unknown"
	}
}

// mode returns the checkbox's mode, if f is a checkbox.
func (f focusItem) mode() (session.Mode, bool) {
	switch f {
	case focusKeyboard:
		return session.ModeKeyboard, true
	case focusScroll:
		return session.ModeMouseScroll, true
	case focusMove:
		return session.ModeMouseMove, true
	case focusSuperClean:
		return session.ModeSuperClean, true
	}
	return 0, false
}

// theme returns the radio button's theme, if f is a radio button.
func (f focusItem) theme() (session.Theme, bool) {
	switch f {
	case focusLight:
		return session.ThemeLight, true
	case focusDark:
		return session.ThemeDark, true
	}
	return 0, false
}

func (f focusItem) next() focusItem { return (f + 1) % focusCount }
func (f focusItem) prev() focusItem { return (f + focusCount - 1) % focusCount }
