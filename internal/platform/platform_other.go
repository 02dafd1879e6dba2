//go:build !windows

package platform

// HideWindow is only implemented for the Windows console.
func HideWindow() error {
	return ErrUnsupported
}

// ShowWindow is only implemented for the Windows console.
func ShowWindow() error {
	return ErrUnsupported
}
