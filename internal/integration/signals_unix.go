//go:build !windows

package integration

import (
	"os"
	"syscall"
)

// shutdownSignals are the signals the command handles by closing cleanly.
func shutdownSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	}
}

// interrupt asks a helper process to shut down.
func interrupt(proc *os.Process, sig os.Signal) error {
	return proc.Signal(sig)
}

const signalsSupported = true
