package integration

import (
	"sync"
	"time"

	"github.com/stigoleg/idleguard/internal/platform"
)

// event is one injected input.
type event struct {
	kind   string
	key    platform.Key
	scroll int
	dx, dy int
}

type recorder struct {
	mu     sync.Mutex
	events []event
}

func (r *recorder) PressKey(k platform.Key) error { return r.add(event{kind: "key", key: k}) }
func (r *recorder) Scroll(units int) error        { return r.add(event{kind: "scroll", scroll: units}) }
func (r *recorder) MoveRelative(dx, dy int) error { return r.add(event{kind: "move", dx: dx, dy: dy}) }

func (r *recorder) add(e event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) drain() []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

type noSleep struct{}

func (noSleep) Sleep(time.Duration) {}

type countingHotkey struct {
	mu               sync.Mutex
	started, stopped int
}

func (c *countingHotkey) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
	return nil
}

func (c *countingHotkey) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped++
	return nil
}

type countingTray struct {
	mu     sync.Mutex
	closed int
}

func (c *countingTray) Show() error { return nil }
func (c *countingTray) Hide()       {}

func (c *countingTray) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return nil
}
