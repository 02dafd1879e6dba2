package util

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrHelperMissing reports that an external sleep-inhibitor helper is not
// installed.
var ErrHelperMissing = errors.New("helper program not found")

// LookupHelper resolves an external helper such as caffeinate or
// systemd-inhibit to the path that should be executed.
func LookupHelper(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty helper name: %w", ErrHelperMissing)
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, ErrHelperMissing)
	}
	return path, nil
}
