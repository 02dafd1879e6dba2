package scheduler

import (
	"sync"
	"time"

	"github.com/stigoleg/idleguard/internal/platform"
)

type manualTimer struct {
	c      chan time.Time
	resets chan time.Duration
}

func (m *manualTimer) C() <-chan time.Time { return m.c }
func (m *manualTimer) Stop() bool          { return true }
func (m *manualTimer) Reset(d time.Duration) bool {
	m.resets <- d
	return true
}

type manualTicker struct {
	c chan time.Time
}

func (m *manualTicker) C() <-chan time.Time { return m.c }
func (m *manualTicker) Stop()               {}

// manualClock hands out timers that only fire when the test says so.
type manualClock struct {
	mu      sync.Mutex
	timer   *manualTimer
	ticker  *manualTicker
	initial time.Duration
}

func (m *manualClock) NewTimer(d time.Duration) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initial = d
	m.timer = &manualTimer{c: make(chan time.Time), resets: make(chan time.Duration, 64)}
	return m.timer
}

func (m *manualClock) NewTicker(time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticker = &manualTicker{c: make(chan time.Time)}
	return m.ticker
}

func (m *manualClock) fire() {
	m.mu.Lock()
	t := m.timer
	m.mu.Unlock()
	t.c <- time.Now()
}

func (m *manualClock) tick() {
	m.mu.Lock()
	t := m.ticker
	m.mu.Unlock()
	t.c <- time.Now()
}

type countingInjector struct {
	mu      sync.Mutex
	keys    []platform.Key
	scrolls []int
	moves   int
	err     error
	panics  bool
}

func (c *countingInjector) PressKey(k platform.Key) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.panics {
		panic("injector exploded")
	}
	c.keys = append(c.keys, k)
	return c.err
}

func (c *countingInjector) Scroll(units int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.panics {
		panic("injector exploded")
	}
	c.scrolls = append(c.scrolls, units)
	return c.err
}

func (c *countingInjector) MoveRelative(int, int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moves++
	return c.err
}

func (c *countingInjector) reset() ([]platform.Key, []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k, s := c.keys, c.scrolls
	c.keys, c.scrolls = nil, nil
	return k, s
}

type noSleep struct{}

func (noSleep) Sleep(time.Duration) {}
