// Package schedulertest provides a manually driven scheduler.Clock.
package schedulertest

import (
	"sync"
	"time"

	"github.com/stigoleg/idleguard/internal/scheduler"
)

// Clock hands out timers and tickers that only fire when told to. Only the
// most recently created timer and ticker are driven.
type Clock struct {
	mu      sync.Mutex
	timer   *timer
	ticker  *ticker
	initial time.Duration
	resets  chan time.Duration
}

// NewClock returns a clock whose timers never fire on their own.
func NewClock() *Clock {
	return &Clock{resets: make(chan time.Duration, 256)}
}

func (c *Clock) NewTimer(d time.Duration) scheduler.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initial = d
	c.timer = &timer{c: make(chan time.Time), resets: c.resets}
	return c.timer
}

func (c *Clock) NewTicker(time.Duration) scheduler.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticker = &ticker{c: make(chan time.Time)}
	return c.ticker
}

// Initial is the duration the last timer was created with.
func (c *Clock) Initial() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initial
}

// Resets receives every duration passed to Timer.Reset.
func (c *Clock) Resets() <-chan time.Duration { return c.resets }

// Fire delivers one expiry of the current timer. It blocks until the
// scheduler loop receives it, or returns false after wait.
func (c *Clock) Fire(wait time.Duration) bool {
	c.mu.Lock()
	t := c.timer
	c.mu.Unlock()
	if t == nil {
		return false
	}
	return deliver(t.c, wait)
}

// Tick delivers one tick of the current ticker, like Fire.
func (c *Clock) Tick(wait time.Duration) bool {
	c.mu.Lock()
	t := c.ticker
	c.mu.Unlock()
	if t == nil {
		return false
	}
	return deliver(t.c, wait)
}

func deliver(ch chan time.Time, wait time.Duration) bool {
	select {
	case ch <- time.Now():
		return true
	case <-time.After(wait):
		return false
	}
}

type timer struct {
	c      chan time.Time
	resets chan time.Duration
}

func (t *timer) C() <-chan time.Time { return t.c }
func (t *timer) Stop() bool          { return true }

func (t *timer) Reset(d time.Duration) bool {
	select {
	case t.resets <- d:
	default:
	}
	return true
}

type ticker struct {
	c chan time.Time
}

func (t *ticker) C() <-chan time.Time { return t.c }
func (t *ticker) Stop()               {}
