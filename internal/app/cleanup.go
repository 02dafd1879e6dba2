package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

const defaultCleanupTimeout = 5 * time.Second

// ErrCleanupTimeout is reported when releasing resources takes too long.
var ErrCleanupTimeout = errors.New("cleanup timeout exceeded")

type cleanupStep struct {
	name string
	fn   func() error
}

// CleanupManager releases registered resources exactly once, in
// registration order, bounded by a timeout.
type CleanupManager struct {
	mu      sync.Mutex
	steps   []cleanupStep
	timeout time.Duration
	once    sync.Once
	err     error
}

// NewCleanupManager creates a manager. A non-positive timeout selects the
// default of five seconds.
func NewCleanupManager(timeout time.Duration) *CleanupManager {
	if timeout <= 0 {
		timeout = defaultCleanupTimeout
	}
	return &CleanupManager{timeout: timeout}
}

// Register adds a named release function.
func (cm *CleanupManager) Register(name string, fn func() error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.steps = append(cm.steps, cleanupStep{name: name, fn: fn})
}

// Execute runs every release function. Later calls return the result of
// the first one.
func (cm *CleanupManager) Execute() error {
	cm.once.Do(func() {
		cm.err = cm.run()
	})
	return cm.err
}

func (cm *CleanupManager) run() error {
	cm.mu.Lock()
	steps := append([]cleanupStep(nil), cm.steps...)
	cm.mu.Unlock()

	if len(steps) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cm.timeout)
	defer cancel()

	var (
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, s := range steps {
			if ctx.Err() != nil {
				return
			}
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("cleanup: panic releasing %s: %v", s.name, r)
						record(fmt.Errorf("%s: panic during cleanup", s.name))
					}
				}()
				if err := s.fn(); err != nil {
					log.Printf("cleanup: error releasing %s: %v", s.name, err)
					record(fmt.Errorf("%s: %w", s.name, err))
					return
				}
				log.Printf("cleanup: released %s", s.name)
			}()
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Printf("cleanup: timeout after %v, some resources may still be held", cm.timeout)
		record(ErrCleanupTimeout)
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}
