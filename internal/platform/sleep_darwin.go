//go:build darwin

package platform

import (
	"context"
	"log"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/stigoleg/idleguard/internal/util"
)

const caffeinateStopTimeout = 2 * time.Second

// darwinSleepInhibitor keeps a caffeinate child process alive while started.
type darwinSleepInhibitor struct {
	mu       sync.Mutex
	cmd      *exec.Cmd
	cancel   context.CancelFunc
	waitDone chan struct{}
}

func (k *darwinSleepInhibitor) Start(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.cmd != nil {
		return nil
	}
	bin, err := util.LookupHelper("caffeinate")
	if err != nil {
		return err
	}

	ctx, k.cancel = context.WithCancel(ctx)
	k.cmd = exec.CommandContext(ctx, bin, "-d", "-i", "-m", "-s", "-u")
	k.cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := k.cmd.Start(); err != nil {
		k.cancel()
		k.cmd = nil
		return err
	}

	k.waitDone = make(chan struct{})
	go func(cmd *exec.Cmd, done chan struct{}) {
		_ = cmd.Wait()
		close(done)
	}(k.cmd, k.waitDone)

	log.Printf("darwin: caffeinate started (pid %d)", k.cmd.Process.Pid)
	return nil
}

func (k *darwinSleepInhibitor) Stop() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.cmd == nil {
		return nil
	}
	pid := k.cmd.Process.Pid
	_ = k.cmd.Process.Signal(syscall.SIGTERM)

	select {
	case <-k.waitDone:
	case <-time.After(caffeinateStopTimeout):
		log.Printf("darwin: caffeinate (pid %d) ignored SIGTERM, killing", pid)
		k.cancel()
		<-k.waitDone
	}
	k.cancel()
	k.cmd = nil
	return nil
}

// NewSleepInhibitor returns the caffeinate backed inhibitor.
func NewSleepInhibitor() (SleepInhibitor, error) {
	return &darwinSleepInhibitor{}, nil
}
