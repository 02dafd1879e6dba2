// Package hotkey registers one global key combination that fires a callback
// regardless of which window has focus.
package hotkey

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

// Modifier bits, matching the Win32 MOD_* values.
const (
	ModAlt      uint32 = 0x0001
	ModControl  uint32 = 0x0002
	ModShift    uint32 = 0x0004
	ModWin      uint32 = 0x0008
	ModNoRepeat uint32 = 0x4000
)

// DefaultCombo is the start/stop toggle.
const DefaultCombo = "Ctrl+Shift+F12"

var ErrInvalidCombo = errors.New("invalid hotkey")

// Combo is a parsed key combination.
type Combo struct {
	Modifiers uint32
	Key       uint32 // virtual-key code
	text      string
}

func (c Combo) String() string { return c.text }

var modifierNames = map[string]uint32{
	"CTRL":    ModControl,
	"CONTROL": ModControl,
	"SHIFT":   ModShift,
	"ALT":     ModAlt,
	"WIN":     ModWin,
	"SUPER":   ModWin,
	"CMD":     ModWin,
}

var namedKeys = map[string]uint32{
	"SPACE":     0x20,
	"ENTER":     0x0D,
	"RETURN":    0x0D,
	"TAB":       0x09,
	"ESC":       0x1B,
	"ESCAPE":    0x1B,
	"PAUSE":     0x13,
	"HOME":      0x24,
	"END":       0x23,
	"PAGEUP":    0x21,
	"PAGEDOWN":  0x22,
	"INSERT":    0x2D,
	"DELETE":    0x2E,
	"LEFT":      0x25,
	"UP":        0x26,
	"RIGHT":     0x27,
	"DOWN":      0x28,
	"BACKSPACE": 0x08,
}

// ParseCombo parses strings such as "Ctrl+Shift+F12" or "alt+k". Exactly
// one non-modifier key and at least one modifier are required.
func ParseCombo(s string) (Combo, error) {
	parts := strings.Split(strings.ToUpper(s), "+")
	var c Combo
	haveKey := false
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Combo{}, fmt.Errorf("%w: %q has an empty part", ErrInvalidCombo, s)
		}
		if mod, ok := modifierNames[p]; ok {
			c.Modifiers |= mod
			continue
		}
		vk, ok := keyCode(p)
		if !ok {
			return Combo{}, fmt.Errorf("%w: unknown key %q", ErrInvalidCombo, p)
		}
		if haveKey {
			return Combo{}, fmt.Errorf("%w: %q names more than one key", ErrInvalidCombo, s)
		}
		c.Key = vk
		haveKey = true
	}
	if !haveKey {
		return Combo{}, fmt.Errorf("%w: %q has no key", ErrInvalidCombo, s)
	}
	if c.Modifiers == 0 {
		return Combo{}, fmt.Errorf("%w: %q needs a modifier", ErrInvalidCombo, s)
	}
	c.text = strings.TrimSpace(s)
	return c, nil
}

func keyCode(name string) (uint32, bool) {
	if vk, ok := namedKeys[name]; ok {
		return vk, true
	}
	if len(name) == 1 {
		ch := name[0]
		if (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			return uint32(ch), true
		}
		return 0, false
	}
	if name[0] == 'F' {
		var n int
		if _, err := fmt.Sscanf(name[1:], "%d", &n); err == nil && fmt.Sprint(n) == name[1:] && n >= 1 && n <= 24 {
			return 0x70 + uint32(n-1), true
		}
	}
	return 0, false
}

// Manager owns the registration of a single combination.
type Manager struct {
	mu       sync.Mutex
	combo    Combo
	callback func()
	running  bool
	stop     func() error
}

// NewManager parses combo and prepares a manager that calls callback on
// every press. Nothing is registered until Start.
func NewManager(combo string, callback func()) (*Manager, error) {
	c, err := ParseCombo(combo)
	if err != nil {
		return nil, err
	}
	return &Manager{combo: c, callback: callback}, nil
}

// Combo returns the parsed combination.
func (m *Manager) Combo() Combo { return m.combo }

// Start registers the combination with the OS.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return nil
	}
	stop, err := m.startPlatform()
	if err != nil {
		return fmt.Errorf("register %s: %w", m.combo, err)
	}
	m.stop = stop
	m.running = true
	log.Printf("hotkey: registered %s", m.combo)
	return nil
}

// Stop releases the registration. Safe to call when not started.
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return nil
	}
	m.running = false
	err := m.stop()
	m.stop = nil
	log.Printf("hotkey: unregistered %s", m.combo)
	return err
}

func (m *Manager) trigger() {
	log.Printf("hotkey: %s pressed", m.combo)
	if m.callback != nil {
		go m.callback()
	}
}
