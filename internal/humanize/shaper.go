// Package humanize turns "press a key" or "move the mouse" into randomized
// sequences of small steps so injected input does not look mechanical.
package humanize

import (
	"math"
	"math/rand"
	"time"

	"github.com/stigoleg/idleguard/internal/platform"
	"github.com/stigoleg/idleguard/internal/session"
)

// Timing and magnitude ranges, all inclusive.
const (
	// Pause before the first input of every action.
	LeadInMin = 10 * time.Millisecond
	LeadInMax = 50 * time.Millisecond

	// Keyboard repeat.
	KeyRepeatOneIn    = 10
	KeyRepeatDelayMin = 50 * time.Millisecond
	KeyRepeatDelayMax = 150 * time.Millisecond

	// Scrolling.
	ScrollUnitsMin    = 1
	ScrollUnitsMax    = 3
	ScrollPauseMin    = 20 * time.Millisecond
	ScrollPauseMax    = 80 * time.Millisecond
	SuperCleanLineMin = 3
	SuperCleanLineMax = 8

	// Pointer movement.
	MoveMaxDX       = 30
	MoveMaxDY       = 15
	MoveStepsMin    = 5
	MoveStepsMax    = 14
	MoveStepWaitMin = 5 * time.Millisecond
	MoveStepWaitMax = 20 * time.Millisecond

	// SuperClean reinforcement.
	ArrowDownDelayMin = 100 * time.Millisecond
	ArrowDownDelayMax = 300 * time.Millisecond
)

// StepKind identifies what a Step does.
type StepKind int

const (
	StepSleep StepKind = iota
	StepKey
	StepScroll
	StepMove
)

func (k StepKind) String() string {
	switch k {
	case StepSleep:
		return "sleep"
	case StepKey:
		return "key"
	case StepScroll:
		return "scroll"
	case StepMove:
		return "move"
	default:
		return "unknown"
	}
}

// Step is one primitive of a plan.
type Step struct {
	Kind  StepKind
	Delay time.Duration // StepSleep
	Key   platform.Key  // StepKey
	Units int           // StepScroll, positive is up
	DX    int           // StepMove
	DY    int           // StepMove
}

func sleep(d time.Duration) Step { return Step{Kind: StepSleep, Delay: d} }
func press(k platform.Key) Step  { return Step{Kind: StepKey, Key: k} }
func scroll(units int) Step      { return Step{Kind: StepScroll, Units: units} }
func move(dx, dy int) Step       { return Step{Kind: StepMove, DX: dx, DY: dy} }

// SuperCleanState is the counter pair carried between SuperClean firings.
type SuperCleanState struct {
	Counter   int
	Threshold int
}

// Plan is everything one firing will do.
type Plan struct {
	Steps      []Step
	SuperClean SuperCleanState
}

// Shaper builds randomized plans from a random source.
// A Shaper is not safe for concurrent use.
type Shaper struct {
	rnd *rand.Rand
}

// NewShaper creates a shaper drawing from rnd.
func NewShaper(rnd *rand.Rand) *Shaper {
	return &Shaper{rnd: rnd}
}

// Intn returns a uniform integer in [min, max].
func (s *Shaper) Intn(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rnd.Intn(max-min+1)
}

func (s *Shaper) between(min, max time.Duration) time.Duration {
	ms := s.Intn(int(min/time.Millisecond), int(max/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}

func (s *Shaper) coin() bool {
	return s.rnd.Intn(2) == 0
}

// Threshold draws a fresh SuperClean threshold.
func (s *Shaper) Threshold() int {
	return s.Intn(session.SuperCleanThresholdMin, session.SuperCleanThresholdMax)
}

// Keyboard presses Page-Up or Page-Down, occasionally twice.
func (s *Shaper) Keyboard() []Step {
	key := platform.KeyPageDown
	if s.coin() {
		key = platform.KeyPageUp
	}
	steps := []Step{sleep(s.between(LeadInMin, LeadInMax)), press(key)}
	if s.rnd.Intn(KeyRepeatOneIn) == 0 {
		steps = append(steps, sleep(s.between(KeyRepeatDelayMin, KeyRepeatDelayMax)), press(key))
	}
	return steps
}

// Scroll turns the wheel one to three notches in a single direction.
func (s *Shaper) Scroll() []Step {
	direction := -1
	if s.coin() {
		direction = 1
	}
	units := s.Intn(ScrollUnitsMin, ScrollUnitsMax)
	return append([]Step{sleep(s.between(LeadInMin, LeadInMax))}, s.notches(direction, units)...)
}

func (s *Shaper) notches(direction, count int) []Step {
	steps := make([]Step, 0, 2*count)
	for i := 0; i < count; i++ {
		if i > 0 {
			steps = append(steps, sleep(s.between(ScrollPauseMin, ScrollPauseMax)))
		}
		steps = append(steps, scroll(direction))
	}
	return steps
}

// MouseMove nudges the pointer along an eased path.
//
// Step i moves by delta*ease(i/n)/n, so the steps do not add up to the
// drawn delta. The path shape is kept as is.
func (s *Shaper) MouseMove() []Step {
	dx := s.Intn(-MoveMaxDX, MoveMaxDX)
	dy := s.Intn(-MoveMaxDY, MoveMaxDY)
	n := s.Intn(MoveStepsMin, MoveStepsMax)

	steps := make([]Step, 0, 2*n)
	for i := 1; i <= n; i++ {
		e := EaseInOutQuad(float64(i) / float64(n))
		stepX := int(math.Round(float64(dx) * e / float64(n)))
		stepY := int(math.Round(float64(dy) * e / float64(n)))
		steps = append(steps, move(stepX, stepY))
		if i < n {
			steps = append(steps, sleep(s.between(MoveStepWaitMin, MoveStepWaitMax)))
		}
	}
	return steps
}

// SuperClean scrolls down a few lines and every threshold firings adds an
// Arrow-Down press. It returns the updated counter state.
func (s *Shaper) SuperClean(st SuperCleanState) ([]Step, SuperCleanState) {
	if st.Threshold < session.SuperCleanThresholdMin || st.Threshold > session.SuperCleanThresholdMax {
		st.Threshold = s.Threshold()
	}

	lines := s.Intn(SuperCleanLineMin, SuperCleanLineMax)
	steps := append([]Step{sleep(s.between(LeadInMin, LeadInMax))}, s.notches(-1, lines)...)

	st.Counter++
	if st.Counter >= st.Threshold {
		steps = append(steps, sleep(s.between(ArrowDownDelayMin, ArrowDownDelayMax)), press(platform.KeyArrowDown))
		st.Counter = 0
		st.Threshold = s.Threshold()
	}
	return steps, st
}

// Plan builds the steps for one firing. SuperClean replaces the standard
// modes; otherwise each selected standard mode runs once in display order.
func (s *Shaper) Plan(modes session.ModeSet, st SuperCleanState) Plan {
	if modes.Has(session.ModeSuperClean) {
		steps, next := s.SuperClean(st)
		return Plan{Steps: steps, SuperClean: next}
	}

	var steps []Step
	for _, m := range session.StandardModes {
		if !modes.Has(m) {
			continue
		}
		switch m {
		case session.ModeKeyboard:
			steps = append(steps, s.Keyboard()...)
		case session.ModeMouseScroll:
			steps = append(steps, s.Scroll()...)
		case session.ModeMouseMove:
			steps = append(steps, s.MouseMove()...)
		}
	}
	return Plan{Steps: steps, SuperClean: st}
}

// EaseInOutQuad is the quadratic ease-in-out curve on [0, 1].
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := 1 - t
	return 1 - 2*u*u
}
