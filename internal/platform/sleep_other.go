//go:build !windows && !darwin && !linux

package platform

// NewSleepInhibitor reports that sleep inhibition is not available.
func NewSleepInhibitor() (SleepInhibitor, error) {
	return nil, ErrUnsupported
}
