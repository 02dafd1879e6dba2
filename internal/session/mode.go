// Package session holds the mutable state of one idleguard run and the
// validation rules applied before the action loop may start.
package session

import (
	"fmt"
	"strings"
)

// Mode is one kind of simulated input.
type Mode uint8

const (
	ModeKeyboard Mode = 1 << iota
	ModeMouseScroll
	ModeMouseMove
	ModeSuperClean
)

// StandardModes are the modes that may be combined freely. SuperClean
// excludes all of them.
var StandardModes = []Mode{ModeKeyboard, ModeMouseScroll, ModeMouseMove}

// AllModes lists every mode in display order.
var AllModes = []Mode{ModeKeyboard, ModeMouseScroll, ModeMouseMove, ModeSuperClean}

func (m Mode) String() string {
	switch m {
	case ModeKeyboard:
		return "keyboard"
	case ModeMouseScroll:
		return "scroll"
	case ModeMouseMove:
		return "move"
	case ModeSuperClean:
		return "superclean"
	default:
		return "unknown"
	}
}

// Label is the human readable checkbox caption.
func (m Mode) Label() string {
	switch m {
	case ModeKeyboard:
		return "Keyboard"
	case ModeMouseScroll:
		return "Mouse Scroll"
	case ModeMouseMove:
		return "Mouse Move"
	case ModeSuperClean:
		return "Super Clean"
	default:
		return "Unknown"
	}
}

// ModeSet is a set of selected modes.
type ModeSet uint8

// NewModeSet builds a set from the given modes, applying the SuperClean
// exclusivity rule in argument order.
func NewModeSet(modes ...Mode) ModeSet {
	var s ModeSet
	for _, m := range modes {
		if !s.Has(m) {
			s = s.Toggle(m)
		}
	}
	return s
}

// Has reports whether m is selected.
func (s ModeSet) Has(m Mode) bool {
	return s&ModeSet(m) != 0
}

// Empty reports whether no mode is selected.
func (s ModeSet) Empty() bool {
	return s == 0
}

// Disabled reports whether m cannot currently be toggled. The standard
// modes are disabled while SuperClean is selected.
func (s ModeSet) Disabled(m Mode) bool {
	return m != ModeSuperClean && s.Has(ModeSuperClean)
}

// Toggle flips m. Selecting SuperClean clears the standard modes;
// toggling a disabled mode leaves the set unchanged.
func (s ModeSet) Toggle(m Mode) ModeSet {
	if s.Disabled(m) {
		return s
	}
	if s.Has(m) {
		return s &^ ModeSet(m)
	}
	if m == ModeSuperClean {
		return ModeSet(ModeSuperClean)
	}
	return s | ModeSet(m)
}

// Modes returns the selected modes in display order.
func (s ModeSet) Modes() []Mode {
	var out []Mode
	for _, m := range AllModes {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s ModeSet) String() string {
	modes := s.Modes()
	if len(modes) == 0 {
		return "none"
	}
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return strings.Join(names, ",")
}

// ParseModes parses a comma separated list such as "keyboard,scroll".
// SuperClean cannot be combined with other modes.
func ParseModes(input string) (ModeSet, error) {
	var s ModeSet
	for _, part := range strings.Split(input, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		var m Mode
		switch name {
		case "keyboard", "key", "keys":
			m = ModeKeyboard
		case "scroll", "mouse-scroll", "wheel":
			m = ModeMouseScroll
		case "move", "mouse-move", "mouse":
			m = ModeMouseMove
		case "superclean", "super-clean", "super":
			m = ModeSuperClean
		default:
			return 0, fmt.Errorf("unknown mode %q (valid: keyboard, scroll, move, superclean)", name)
		}
		if (m == ModeSuperClean && !s.Empty() && !s.Has(ModeSuperClean)) || s.Disabled(m) {
			return 0, fmt.Errorf("superclean cannot be combined with other modes")
		}
		s |= ModeSet(m)
	}
	return s, nil
}
