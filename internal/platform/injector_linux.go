//go:build linux

package platform

import (
	"fmt"
	"sync"

	"github.com/stigoleg/idleguard/internal/platform/linux"
)

// uinputInjector injects input through a virtual /dev/uinput device.
type uinputInjector struct {
	mu  sync.Mutex
	sim *linux.UinputSimulator
}

// NewInjector creates the uinput device. It fails when /dev/uinput is not
// writable by the current user.
func NewInjector() (Injector, error) {
	sim := &linux.UinputSimulator{}
	if err := sim.Setup(); err != nil {
		return nil, fmt.Errorf("uinput injector: %w", err)
	}
	return &uinputInjector{sim: sim}, nil
}

func (u *uinputInjector) PressKey(k Key) error {
	var code uint16
	switch k {
	case KeyPageUp:
		code = linux.KeyPageUp
	case KeyPageDown:
		code = linux.KeyPageDown
	case KeyArrowDown:
		code = linux.KeyDown
	default:
		return fmt.Errorf("press key: unknown key %d", int(k))
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sim.Tap(code)
}

func (u *uinputInjector) Scroll(units int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sim.Wheel(int32(units))
}

func (u *uinputInjector) MoveRelative(dx, dy int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sim.Move(int32(dx), int32(dy))
}

// Close destroys the virtual device.
func (u *uinputInjector) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sim.Close()
	return nil
}
