package humanize

import (
	"fmt"
	"time"

	"github.com/stigoleg/idleguard/internal/platform"
)

// Sleeper blocks for a duration. time.Sleep satisfies it through SleepFunc.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleepFunc adapts a function to Sleeper.
type SleepFunc func(time.Duration)

func (f SleepFunc) Sleep(d time.Duration) { f(d) }

// RealSleeper sleeps on the calling goroutine.
var RealSleeper Sleeper = SleepFunc(time.Sleep)

// Executor replays plans against an injector.
type Executor struct {
	Injector platform.Injector
	Sleeper  Sleeper
}

// Run executes steps in order and stops at the first injector error.
func (e *Executor) Run(steps []Step) error {
	sleeper := e.Sleeper
	if sleeper == nil {
		sleeper = RealSleeper
	}
	for i, st := range steps {
		var err error
		switch st.Kind {
		case StepSleep:
			sleeper.Sleep(st.Delay)
		case StepKey:
			err = e.Injector.PressKey(st.Key)
		case StepScroll:
			err = e.Injector.Scroll(st.Units)
		case StepMove:
			err = e.Injector.MoveRelative(st.DX, st.DY)
		default:
			err = fmt.Errorf("unknown step kind %d", st.Kind)
		}
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Kind, err)
		}
	}
	return nil
}
