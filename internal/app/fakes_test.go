package app

import (
	"errors"
	"sync"
	"time"

	"github.com/stigoleg/idleguard/internal/platform"
)

type nopInjector struct {
	mu    sync.Mutex
	calls int
}

func (n *nopInjector) PressKey(platform.Key) error { n.inc(); return nil }
func (n *nopInjector) Scroll(int) error            { n.inc(); return nil }
func (n *nopInjector) MoveRelative(int, int) error { n.inc(); return nil }

func (n *nopInjector) inc() {
	n.mu.Lock()
	n.calls++
	n.mu.Unlock()
}

type noSleep struct{}

func (noSleep) Sleep(time.Duration) {}

type fakeWindow struct {
	hidden  bool
	hideErr error
}

func (f *fakeWindow) Hide() error {
	if f.hideErr != nil {
		return f.hideErr
	}
	f.hidden = true
	return nil
}

func (f *fakeWindow) Show() error {
	f.hidden = false
	return nil
}

type fakeTray struct {
	shown   bool
	closed  int
	showErr error
}

func (f *fakeTray) Show() error {
	if f.showErr != nil {
		return f.showErr
	}
	f.shown = true
	return nil
}

func (f *fakeTray) Hide() { f.shown = false }

func (f *fakeTray) Close() error {
	f.closed++
	f.shown = false
	return nil
}

type fakeHotkey struct {
	started, stopped int
	startErr         error
}

func (f *fakeHotkey) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started++
	return nil
}

func (f *fakeHotkey) Stop() error {
	f.stopped++
	return nil
}

var errBoom = errors.New("boom")
