package scheduler

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stigoleg/idleguard/internal/humanize"
	"github.com/stigoleg/idleguard/internal/platform"
	"github.com/stigoleg/idleguard/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	sched  *Scheduler
	clock  *manualClock
	inj    *countingInjector
	fired  chan Report
	ticked chan int
}

func newHarness(t *testing.T, seed int64) *harness {
	t.Helper()
	h := &harness{
		clock:  &manualClock{},
		inj:    &countingInjector{},
		fired:  make(chan Report, 64),
		ticked: make(chan int, 64),
	}
	h.sched = New(Config{
		Injector: h.inj,
		Sleeper:  noSleep{},
		Rand:     rand.New(rand.NewSource(seed)),
		Clock:    h.clock,
		OnFire:   func(r Report) { h.fired <- r },
		OnTick:   func(n int) { h.ticked <- n },
	})
	t.Cleanup(func() { _ = h.sched.Stop() })
	return h
}

func (h *harness) fireAndWait(t *testing.T) Report {
	t.Helper()
	h.clock.fire()
	select {
	case r := <-h.fired:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("firing did not complete")
		return Report{}
	}
}

func TestStartValidation(t *testing.T) {
	h := newHarness(t, 1)
	before := h.sched.Snapshot()

	assert.ErrorIs(t, h.sched.Start(9, session.NewModeSet(session.ModeKeyboard)), session.ErrIntervalTooSmall)
	assert.ErrorIs(t, h.sched.Start(30, 0), session.ErrNoModeSelected)

	assert.Equal(t, before, h.sched.Snapshot(), "failed start must not change state")
	assert.False(t, h.sched.IsRunning())
}

func TestStartStop(t *testing.T) {
	h := newHarness(t, 2)

	require.NoError(t, h.sched.Start(10, session.NewModeSet(session.ModeKeyboard)))
	st := h.sched.Snapshot()
	assert.True(t, st.Running)
	assert.Equal(t, 10, st.BaseIntervalSeconds)
	assert.Equal(t, 10, st.RemainingSeconds)
	assert.Equal(t, 10*time.Second, h.clock.initial)

	assert.Error(t, h.sched.Start(10, session.NewModeSet(session.ModeKeyboard)), "double start")

	require.NoError(t, h.sched.Stop())
	assert.False(t, h.sched.IsRunning())
	require.NoError(t, h.sched.Stop(), "stopping twice is harmless")
}

func TestCountdownTicks(t *testing.T) {
	h := newHarness(t, 3)
	require.NoError(t, h.sched.Start(12, session.NewModeSet(session.ModeMouseMove)))

	h.clock.tick()
	assert.Equal(t, 11, <-h.ticked)
	h.clock.tick()
	assert.Equal(t, 10, <-h.ticked)
	assert.Equal(t, 10, h.sched.Snapshot().RemainingSeconds)
}

func TestScrollScenario(t *testing.T) {
	h := newHarness(t, 4)
	require.NoError(t, h.sched.Start(10, session.NewModeSet(session.ModeMouseScroll)))

	for i := 0; i < 50; i++ {
		r := h.fireAndWait(t)
		require.NoError(t, r.Err)
		assert.GreaterOrEqual(t, r.NextDelaySeconds, 9)
		assert.LessOrEqual(t, r.NextDelaySeconds, 11)
		assert.Equal(t, time.Duration(r.NextDelaySeconds)*time.Second, <-h.clock.timer.resets)
		assert.Equal(t, r.NextDelaySeconds, h.sched.Snapshot().RemainingSeconds)

		keys, scrolls := h.inj.reset()
		assert.Empty(t, keys)
		require.GreaterOrEqual(t, len(scrolls), 1)
		require.LessOrEqual(t, len(scrolls), 3)
		for _, u := range scrolls {
			assert.Equal(t, scrolls[0], u, "one direction per firing")
		}
	}
}

func TestSuperCleanScenario(t *testing.T) {
	h := newHarness(t, 5)
	require.NoError(t, h.sched.Start(60, session.NewModeSet(session.ModeSuperClean)))

	arrows := 0
	for i := 0; i < 10; i++ {
		before := h.sched.Snapshot()
		r := h.fireAndWait(t)
		require.NoError(t, r.Err)

		keys, scrolls := h.inj.reset()
		for _, u := range scrolls {
			assert.Equal(t, -1, u)
		}
		assert.GreaterOrEqual(t, len(scrolls), humanize.SuperCleanLineMin)

		after := h.sched.Snapshot()
		if len(keys) > 0 {
			arrows++
			assert.Equal(t, []platform.Key{platform.KeyArrowDown}, keys)
			assert.Zero(t, after.SuperCleanCounter)
			assert.Equal(t, before.SuperCleanThreshold, before.SuperCleanCounter+1, "arrow fires exactly at the threshold")
			assert.GreaterOrEqual(t, after.SuperCleanThreshold, session.SuperCleanThresholdMin)
			assert.LessOrEqual(t, after.SuperCleanThreshold, session.SuperCleanThresholdMax)
		} else {
			assert.Equal(t, before.SuperCleanCounter+1, after.SuperCleanCounter)
			assert.Less(t, after.SuperCleanCounter, after.SuperCleanThreshold)
		}

		lo, hi := JitterBounds(60)
		assert.GreaterOrEqual(t, r.NextDelaySeconds, lo)
		assert.LessOrEqual(t, r.NextDelaySeconds, hi)
	}
	assert.GreaterOrEqual(t, arrows, 1)
}

func TestActionErrorsAreSwallowed(t *testing.T) {
	h := newHarness(t, 6)
	h.inj.err = errors.New("desktop locked")
	require.NoError(t, h.sched.Start(10, session.NewModeSet(session.ModeKeyboard)))

	r := h.fireAndWait(t)
	require.Error(t, r.Err)
	assert.True(t, h.sched.IsRunning(), "loop survives a failing action")
	assert.Contains(t, h.sched.Snapshot().LastError, "desktop locked")

	h.inj.mu.Lock()
	h.inj.err = nil
	h.inj.mu.Unlock()

	r = h.fireAndWait(t)
	require.NoError(t, r.Err)
	assert.Empty(t, h.sched.Snapshot().LastError)
}

func TestActionPanicsAreRecovered(t *testing.T) {
	h := newHarness(t, 7)
	h.inj.panics = true
	require.NoError(t, h.sched.Start(10, session.NewModeSet(session.ModeMouseScroll)))

	r := h.fireAndWait(t)
	require.Error(t, r.Err)
	assert.Contains(t, r.Err.Error(), "panic")
	assert.True(t, h.sched.IsRunning())
}

func TestNoFiringAfterStop(t *testing.T) {
	h := newHarness(t, 8)
	require.NoError(t, h.sched.Start(10, session.NewModeSet(session.ModeKeyboard)))
	require.NoError(t, h.sched.Stop())

	// The loop has exited; nobody receives from the timer any more.
	select {
	case h.clock.timer.c <- time.Now():
		t.Fatal("loop still listening after stop")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Empty(t, h.fired)
}

type fakeInhibitor struct {
	started, stopped int
	startErr         error
}

func (f *fakeInhibitor) Start(context.Context) error {
	f.started++
	return f.startErr
}

func (f *fakeInhibitor) Stop() error {
	f.stopped++
	return nil
}

func TestInhibitorLifecycle(t *testing.T) {
	inhib := &fakeInhibitor{}
	s := New(Config{Injector: &countingInjector{}, Sleeper: noSleep{}, Clock: &manualClock{}, Inhibitor: inhib})

	require.NoError(t, s.Start(10, session.NewModeSet(session.ModeKeyboard)))
	require.NoError(t, s.Stop())
	assert.Equal(t, 1, inhib.started)
	assert.Equal(t, 1, inhib.stopped)

	inhib.startErr = errors.New("no logind")
	require.NoError(t, s.Start(10, session.NewModeSet(session.ModeKeyboard)), "inhibitor failure is not fatal")
	require.NoError(t, s.Stop())
	assert.Equal(t, 1, inhib.stopped, "an inhibitor that never started is not released")
}
