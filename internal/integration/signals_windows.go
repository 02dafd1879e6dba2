//go:build windows

package integration

import (
	"os"
	"syscall"
)

func shutdownSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}
}

// Windows cannot deliver signals to another process.
func interrupt(proc *os.Process, _ os.Signal) error {
	return proc.Kill()
}

const signalsSupported = false
