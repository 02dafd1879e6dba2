//go:build !windows && !darwin && !linux

package platform

// NewInjector reports that input injection is not available.
func NewInjector() (Injector, error) {
	return nil, ErrUnsupported
}
