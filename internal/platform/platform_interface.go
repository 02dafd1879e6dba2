// Package platform wraps the operating system services idleguard relies on:
// synthetic input injection, sleep inhibition and console window control.
package platform

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by services that have no implementation on the
// current platform.
var ErrUnsupported = errors.New("unsupported platform")

// Key is a key the injector knows how to press.
type Key int

const (
	KeyPageUp Key = iota
	KeyPageDown
	KeyArrowDown
)

// String returns the key name understood by robotgo.
func (k Key) String() string {
	switch k {
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	case KeyArrowDown:
		return "down"
	default:
		return "unknown"
	}
}

// Injector sends synthetic input to the active desktop session.
type Injector interface {
	// PressKey presses and releases k.
	PressKey(k Key) error
	// Scroll turns the wheel by units notches. Positive scrolls up,
	// negative scrolls down.
	Scroll(units int) error
	// MoveRelative moves the pointer by (dx, dy) pixels.
	MoveRelative(dx, dy int) error
}

// SleepInhibitor keeps the system and display awake while started.
type SleepInhibitor interface {
	Start(ctx context.Context) error
	Stop() error
}

// unsupportedInjector fails every call with ErrUnsupported.
type unsupportedInjector struct{}

func (unsupportedInjector) PressKey(Key) error          { return ErrUnsupported }
func (unsupportedInjector) Scroll(int) error            { return ErrUnsupported }
func (unsupportedInjector) MoveRelative(int, int) error { return ErrUnsupported }

// UnsupportedInjector returns an injector whose calls always fail. It lets the
// action loop run (and report errors) where no real injector is available.
func UnsupportedInjector() Injector {
	return unsupportedInjector{}
}

// ConsoleWindow hides and restores the terminal window hosting the UI.
type ConsoleWindow struct{}

func (ConsoleWindow) Hide() error { return HideWindow() }
func (ConsoleWindow) Show() error { return ShowWindow() }
