//go:build !windows

package tray

import "github.com/stigoleg/idleguard/internal/platform"

func (t *Tray) launchPlatform(onReady, onExit func()) error {
	return platform.ErrUnsupported
}

func (t *Tray) quitPlatform() error {
	return nil
}
