package integration

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/idleguard/internal/app"
	"github.com/stigoleg/idleguard/internal/platform"
	"github.com/stigoleg/idleguard/internal/scheduler"
	"github.com/stigoleg/idleguard/internal/scheduler/schedulertest"
	"github.com/stigoleg/idleguard/internal/session"
)

type rig struct {
	ctrl  *app.Controller
	clock *schedulertest.Clock
	rec   *recorder
	fired chan app.FiredMsg
}

func newRig(t *testing.T, seed int64, modes ...session.Mode) *rig {
	t.Helper()
	r := &rig{
		clock: schedulertest.NewClock(),
		rec:   &recorder{},
		fired: make(chan app.FiredMsg, 32),
	}
	r.ctrl = app.New(app.Options{
		Injector: r.rec,
		Sleeper:  noSleep{},
		Clock:    r.clock,
		Rand:     rand.New(rand.NewSource(seed)),
		Modes:    session.NewModeSet(modes...),
	})
	r.ctrl.SetNotifier(func(msg any) {
		if f, ok := msg.(app.FiredMsg); ok {
			r.fired <- f
		}
	})
	t.Cleanup(func() { _ = r.ctrl.Close() })
	return r
}

func (r *rig) fire(t *testing.T) scheduler.Report {
	t.Helper()
	require.True(t, r.clock.Fire(2*time.Second), "loop not listening")
	select {
	case f := <-r.fired:
		return f.Report
	case <-time.After(2 * time.Second):
		t.Fatal("firing did not complete")
		return scheduler.Report{}
	}
}

func TestMouseScrollScenario(t *testing.T) {
	r := newRig(t, 21, session.ModeMouseScroll)
	require.NoError(t, r.ctrl.Start("10"))

	for i := 0; i < 25; i++ {
		rep := r.fire(t)
		assert.GreaterOrEqual(t, rep.NextDelaySeconds, 9)
		assert.LessOrEqual(t, rep.NextDelaySeconds, 11)

		events := r.rec.drain()
		require.NotEmpty(t, events)
		require.LessOrEqual(t, len(events), 3)
		for _, e := range events {
			require.Equal(t, "scroll", e.kind)
			assert.NotZero(t, e.scroll)
			assert.Equal(t, events[0].scroll, e.scroll, "single direction")
		}
	}
}

func TestSuperCleanScenario(t *testing.T) {
	r := newRig(t, 22, session.ModeSuperClean)
	require.NoError(t, r.ctrl.Start("60"))

	arrows := 0
	for i := 0; i < 10; i++ {
		before := r.ctrl.State()
		rep := r.fire(t)

		lo, hi := scheduler.JitterBounds(60)
		assert.GreaterOrEqual(t, rep.NextDelaySeconds, lo)
		assert.LessOrEqual(t, rep.NextDelaySeconds, hi)

		for _, e := range r.rec.drain() {
			if e.kind == "key" {
				assert.Equal(t, platform.KeyArrowDown, e.key)
				arrows++
				assert.Equal(t, before.SuperCleanThreshold, before.SuperCleanCounter+1)
				assert.Zero(t, rep.SuperClean.Counter)
				continue
			}
			assert.Equal(t, -1, e.scroll, "super clean only scrolls down")
		}
		assert.LessOrEqual(t, rep.SuperClean.Counter, rep.SuperClean.Threshold)
		assert.GreaterOrEqual(t, rep.SuperClean.Threshold, session.SuperCleanThresholdMin)
		assert.LessOrEqual(t, rep.SuperClean.Threshold, session.SuperCleanThresholdMax)
	}
	assert.GreaterOrEqual(t, arrows, 1)
}

func TestAllStandardModesFireInOrder(t *testing.T) {
	r := newRig(t, 23, session.ModeKeyboard, session.ModeMouseScroll, session.ModeMouseMove)
	require.NoError(t, r.ctrl.Start("10"))
	r.fire(t)

	events := r.rec.drain()
	require.NotEmpty(t, events)

	// Key presses come first, then scrolls, then moves.
	phase := 0
	for _, e := range events {
		p := map[string]int{"key": 0, "scroll": 1, "move": 2}[e.kind]
		assert.GreaterOrEqual(t, p, phase, "events out of order: %+v", events)
		phase = p
	}
	require.Equal(t, "key", events[0].kind)
	assert.Contains(t, []platform.Key{platform.KeyPageUp, platform.KeyPageDown}, events[0].key)
	assert.Equal(t, "move", events[len(events)-1].kind)
}

func TestStopPreventsFurtherFirings(t *testing.T) {
	r := newRig(t, 24, session.ModeKeyboard)
	require.NoError(t, r.ctrl.Start("10"))
	r.fire(t)
	require.NoError(t, r.ctrl.Stop())

	assert.False(t, r.clock.Fire(100*time.Millisecond), "no timer armed after stop")
	assert.Empty(t, r.fired)
}

func TestCloseWhileRunningReleasesEverything(t *testing.T) {
	r := newRig(t, 25, session.ModeMouseMove)
	hk := &countingHotkey{}
	tr := &countingTray{}
	r.ctrl.AttachHotkey(hk)
	r.ctrl.AttachTray(tr)

	require.NoError(t, r.ctrl.Start("10"))
	r.fire(t)

	require.NotPanics(t, func() {
		require.NoError(t, r.ctrl.Close())
	})
	assert.False(t, r.ctrl.Running())
	assert.Equal(t, 1, hk.stopped)
	assert.Equal(t, 1, tr.closed)
}
