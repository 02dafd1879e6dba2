//go:build !windows

package hotkey

import "github.com/stigoleg/idleguard/internal/platform"

func (m *Manager) startPlatform() (func() error, error) {
	return nil, platform.ErrUnsupported
}
