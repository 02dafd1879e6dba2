//go:build linux

package platform

import (
	"context"
	"sync"

	"github.com/stigoleg/idleguard/internal/platform/linux"
)

type linuxSleepInhibitor struct {
	mu      sync.Mutex
	inhib   *linux.SystemdInhibitor
	cancel  context.CancelFunc
	running bool
}

func (l *linuxSleepInhibitor) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return nil
	}
	ctx, l.cancel = context.WithCancel(ctx)
	l.inhib = &linux.SystemdInhibitor{}
	if err := l.inhib.Activate(ctx); err != nil {
		l.cancel()
		return err
	}
	l.running = true
	return nil
}

func (l *linuxSleepInhibitor) Stop() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return nil
	}
	l.running = false
	err := l.inhib.Deactivate()
	l.cancel()
	return err
}

// NewSleepInhibitor returns the systemd-inhibit backed inhibitor.
func NewSleepInhibitor() (SleepInhibitor, error) {
	return &linuxSleepInhibitor{}, nil
}
