// Package scheduler runs the action loop: a jittered action timer plus a
// one-second countdown ticker, both owned by a single goroutine.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/stigoleg/idleguard/internal/humanize"
	"github.com/stigoleg/idleguard/internal/platform"
	"github.com/stigoleg/idleguard/internal/session"
)

const defaultStopTimeout = 5 * time.Second

// Report describes one completed firing.
type Report struct {
	Steps            int
	NextDelaySeconds int
	SuperClean       humanize.SuperCleanState
	Err              error
}

// Config wires a Scheduler to its collaborators. Injector is required.
type Config struct {
	Injector  platform.Injector
	Sleeper   humanize.Sleeper
	Rand      *rand.Rand
	Clock     Clock
	Inhibitor platform.SleepInhibitor

	// OnFire and OnTick run on the loop goroutine, without locks held.
	OnFire func(Report)
	OnTick func(remainingSeconds int)
}

// Scheduler manages the action loop state.
type Scheduler struct {
	mu    sync.Mutex
	state session.State

	cfg    Config
	shaper *humanize.Shaper
	exec   *humanize.Executor

	cancel context.CancelFunc
	done   chan struct{}

	inhibitorHeld bool
}

// New creates a stopped scheduler.
func New(cfg Config) *Scheduler {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.Sleeper == nil {
		cfg.Sleeper = humanize.RealSleeper
	}
	if cfg.Injector == nil {
		cfg.Injector = platform.UnsupportedInjector()
	}
	shaper := humanize.NewShaper(cfg.Rand)
	return &Scheduler{
		cfg:    cfg,
		shaper: shaper,
		exec:   &humanize.Executor{Injector: cfg.Injector, Sleeper: cfg.Sleeper},
		state:  session.State{SuperCleanThreshold: shaper.Threshold()},
	}
}

// IsRunning returns whether the action loop is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Running
}

// Snapshot returns a copy of the current state.
func (s *Scheduler) Snapshot() session.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start validates the request and arms the loop. A validation failure
// leaves the state untouched.
func (s *Scheduler) Start(intervalSeconds int, modes session.ModeSet) error {
	if err := session.ValidateStart(intervalSeconds, modes); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Running {
		return errors.New("scheduler already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	s.state.Running = true
	s.state.BaseIntervalSeconds = intervalSeconds
	s.state.RemainingSeconds = intervalSeconds
	s.state.Modes = modes
	s.state.LastError = ""

	if s.cfg.Inhibitor != nil {
		if err := s.cfg.Inhibitor.Start(ctx); err != nil {
			log.Printf("scheduler: sleep inhibitor unavailable: %v", err)
		} else {
			s.inhibitorHeld = true
		}
	}

	timer := s.cfg.Clock.NewTimer(time.Duration(intervalSeconds) * time.Second)
	ticker := s.cfg.Clock.NewTicker(time.Second)
	go s.run(ctx, s.done, timer, ticker)

	log.Printf("scheduler: started (interval=%ds modes=%s)", intervalSeconds, modes)
	return nil
}

// Stop disarms both timers. An action already executing finishes first.
func (s *Scheduler) Stop() error {
	return s.StopWithTimeout(0)
}

// StopWithTimeout stops the loop and waits at most timeout for it to exit.
func (s *Scheduler) StopWithTimeout(timeout time.Duration) error {
	s.mu.Lock()
	if !s.state.Running {
		s.mu.Unlock()
		return nil
	}
	if timeout <= 0 {
		timeout = defaultStopTimeout
	}

	s.state.Running = false
	s.state.RemainingSeconds = 0
	cancel, done := s.cancel, s.done
	s.cancel = nil
	held := s.inhibitorHeld
	s.inhibitorHeld = false
	s.mu.Unlock()

	cancel()

	var errs []error
	if held {
		if err := s.cfg.Inhibitor.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("release sleep inhibitor: %w", err))
		}
	}

	select {
	case <-done:
		log.Printf("scheduler: stopped")
	case <-time.After(timeout):
		log.Printf("scheduler: stop timeout exceeded after %v", timeout)
		errs = append(errs, context.DeadlineExceeded)
	}
	return errors.Join(errs...)
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}, timer Timer, ticker Ticker) {
	defer close(done)
	defer timer.Stop()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.countdown(ctx)
		case <-timer.C():
			next, ok := s.fire(ctx)
			if !ok {
				return
			}
			timer.Reset(time.Duration(next) * time.Second)
		}
	}
}

func (s *Scheduler) countdown(ctx context.Context) {
	s.mu.Lock()
	if !s.state.Running || ctx.Err() != nil {
		s.mu.Unlock()
		return
	}
	if s.state.RemainingSeconds > 0 {
		s.state.RemainingSeconds--
	}
	remaining := s.state.RemainingSeconds
	s.mu.Unlock()

	if s.cfg.OnTick != nil {
		s.cfg.OnTick(remaining)
	}
}

// fire performs one action burst. It reports false when the loop was
// stopped before the firing could begin.
func (s *Scheduler) fire(ctx context.Context) (int, bool) {
	s.mu.Lock()
	if !s.state.Running || ctx.Err() != nil {
		s.mu.Unlock()
		return 0, false
	}
	d := Decide(s.state, s.shaper)
	s.state.SuperCleanCounter = d.Plan.SuperClean.Counter
	s.state.SuperCleanThreshold = d.Plan.SuperClean.Threshold
	s.state.RemainingSeconds = d.NextDelaySeconds
	s.mu.Unlock()

	err := s.execute(d.Plan.Steps)

	s.mu.Lock()
	if err != nil {
		s.state.LastError = err.Error()
	} else {
		s.state.LastError = ""
	}
	s.mu.Unlock()

	if err != nil {
		log.Printf("scheduler: action failed, continuing: %v", err)
	} else {
		log.Printf("scheduler: fired %d steps, next in %ds", len(d.Plan.Steps), d.NextDelaySeconds)
	}

	if s.cfg.OnFire != nil {
		s.cfg.OnFire(Report{
			Steps:            len(d.Plan.Steps),
			NextDelaySeconds: d.NextDelaySeconds,
			SuperClean:       d.Plan.SuperClean,
			Err:              err,
		})
	}
	return d.NextDelaySeconds, true
}

func (s *Scheduler) execute(steps []humanize.Step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during action: %v", r)
		}
	}()
	return s.exec.Run(steps)
}
