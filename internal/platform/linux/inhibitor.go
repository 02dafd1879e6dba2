//go:build linux

package linux

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/stigoleg/idleguard/internal/util"
)

const inhibitorVerifyDelay = 100 * time.Millisecond

// SystemdInhibitor holds a logind idle/sleep inhibitor lock for as long as
// its child process lives.
type SystemdInhibitor struct {
	cmd *exec.Cmd
}

// Activate starts systemd-inhibit. The lock is dropped when ctx is
// cancelled or Deactivate is called.
func (s *SystemdInhibitor) Activate(ctx context.Context) error {
	bin, err := util.LookupHelper("systemd-inhibit")
	if err != nil {
		return err
	}

	s.cmd = exec.CommandContext(ctx, bin,
		"--what=idle:sleep",
		"--who=idleguard",
		"--why=Simulating user activity",
		"--mode=block",
		"sleep", "infinity")

	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start systemd-inhibit: %w", err)
	}

	time.Sleep(inhibitorVerifyDelay)
	if err := s.cmd.Process.Signal(syscall.Signal(0)); err != nil {
		out, _ := runVerbose(bin, "--list")
		return fmt.Errorf("systemd-inhibit exited early: %w (locks: %s)", err, out)
	}

	log.Printf("linux: systemd-inhibit started (pid %d)", s.cmd.Process.Pid)
	return nil
}

// Deactivate kills the inhibitor process and reaps it.
func (s *SystemdInhibitor) Deactivate() error {
	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}
	err := s.cmd.Process.Kill()
	_ = s.cmd.Wait()
	s.cmd = nil
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
