package humanize

import (
	"time"

	"github.com/stigoleg/idleguard/internal/platform"
)

type call struct {
	op    string
	key   platform.Key
	units int
	dx    int
	dy    int
}

type recordingInjector struct {
	calls []call
	err   error
}

func (r *recordingInjector) PressKey(k platform.Key) error {
	r.calls = append(r.calls, call{op: "key", key: k})
	return r.err
}

func (r *recordingInjector) Scroll(units int) error {
	r.calls = append(r.calls, call{op: "scroll", units: units})
	return r.err
}

func (r *recordingInjector) MoveRelative(dx, dy int) error {
	r.calls = append(r.calls, call{op: "move", dx: dx, dy: dy})
	return r.err
}

type recordingSleeper struct {
	total time.Duration
	count int
}

func (r *recordingSleeper) Sleep(d time.Duration) {
	r.total += d
	r.count++
}
