//go:build windows || darwin

package platform

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

type robotgoInjector struct{}

// NewInjector returns the robotgo backed injector.
func NewInjector() (Injector, error) {
	return &robotgoInjector{}, nil
}

func (r *robotgoInjector) PressKey(k Key) error {
	if k.String() == "unknown" {
		return fmt.Errorf("press key: unknown key %d", int(k))
	}
	return robotgo.KeyTap(k.String())
}

func (r *robotgoInjector) Scroll(units int) error {
	direction := "up"
	if units < 0 {
		direction = "down"
		units = -units
	}
	for i := 0; i < units; i++ {
		robotgo.ScrollDir(1, direction)
	}
	return nil
}

func (r *robotgoInjector) MoveRelative(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}
