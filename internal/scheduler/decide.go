package scheduler

import (
	"github.com/stigoleg/idleguard/internal/humanize"
	"github.com/stigoleg/idleguard/internal/session"
)

// Decision is what one firing does and when the next one happens.
type Decision struct {
	Plan             humanize.Plan
	NextDelaySeconds int
}

// JitterBounds returns the inclusive range NextDelay draws from.
func JitterBounds(intervalSeconds int) (lo, hi int) {
	v := intervalSeconds / 10
	lo = intervalSeconds - v
	if lo < session.MinDelaySeconds {
		lo = session.MinDelaySeconds
	}
	hi = intervalSeconds + v
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// NextDelay applies up to ±10% jitter to the base interval, never going
// below session.MinDelaySeconds.
func NextDelay(intervalSeconds int, sh *humanize.Shaper) int {
	v := intervalSeconds / 10
	d := intervalSeconds + sh.Intn(-v, v)
	if d < session.MinDelaySeconds {
		d = session.MinDelaySeconds
	}
	return d
}

// Decide computes the firing for the given state. It only reads st and
// draws from sh; applying the result is up to the caller.
func Decide(st session.State, sh *humanize.Shaper) Decision {
	plan := sh.Plan(st.Modes, humanize.SuperCleanState{
		Counter:   st.SuperCleanCounter,
		Threshold: st.SuperCleanThreshold,
	})
	return Decision{
		Plan:             plan,
		NextDelaySeconds: NextDelay(st.BaseIntervalSeconds, sh),
	}
}
