package humanize

import (
	"errors"
	"testing"
	"time"

	"github.com/stigoleg/idleguard/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorRun(t *testing.T) {
	inj := &recordingInjector{}
	sl := &recordingSleeper{}
	e := &Executor{Injector: inj, Sleeper: sl}

	err := e.Run([]Step{
		sleep(20 * time.Millisecond),
		press(platform.KeyPageDown),
		scroll(-1),
		sleep(30 * time.Millisecond),
		move(2, -1),
	})
	require.NoError(t, err)

	assert.Equal(t, []call{
		{op: "key", key: platform.KeyPageDown},
		{op: "scroll", units: -1},
		{op: "move", dx: 2, dy: -1},
	}, inj.calls)
	assert.Equal(t, 2, sl.count)
	assert.Equal(t, 50*time.Millisecond, sl.total)
}

func TestExecutorStopsAtFirstError(t *testing.T) {
	boom := errors.New("injection refused")
	inj := &recordingInjector{err: boom}
	e := &Executor{Injector: inj, Sleeper: &recordingSleeper{}}

	err := e.Run([]Step{scroll(1), scroll(1)})
	require.ErrorIs(t, err, boom)
	assert.Len(t, inj.calls, 1)
}

func TestExecutorUnknownStep(t *testing.T) {
	e := &Executor{Injector: &recordingInjector{}, Sleeper: &recordingSleeper{}}
	assert.Error(t, e.Run([]Step{{Kind: StepKind(99)}}))
}
