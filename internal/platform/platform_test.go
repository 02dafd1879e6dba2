package platform

import (
	"context"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNames(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyPageUp, "pageup"},
		{KeyPageDown, "pagedown"},
		{KeyArrowDown, "down"},
		{Key(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.key.String())
	}
}

func TestUnsupportedInjector(t *testing.T) {
	inj := UnsupportedInjector()
	assert.ErrorIs(t, inj.PressKey(KeyPageUp), ErrUnsupported)
	assert.ErrorIs(t, inj.Scroll(-1), ErrUnsupported)
	assert.ErrorIs(t, inj.MoveRelative(1, 1), ErrUnsupported)
}

func TestWindowControlOutsideWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("console window control is implemented on windows")
	}
	assert.ErrorIs(t, HideWindow(), ErrUnsupported)
	assert.ErrorIs(t, ShowWindow(), ErrUnsupported)
}

func TestSleepInhibitorStartStop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode")
	}
	if os.Getenv("IDLEGUARD_SYSTEM_TESTS") != "1" {
		t.Skip("set IDLEGUARD_SYSTEM_TESTS=1 to touch the real power management")
	}

	inhib, err := NewSleepInhibitor()
	if err == ErrUnsupported {
		t.Skip("Skipping on unsupported platform")
	}
	require.NoError(t, err)

	require.NoError(t, inhib.Start(context.Background()))
	// A second start is a no-op.
	require.NoError(t, inhib.Start(context.Background()))
	require.NoError(t, inhib.Stop())
	// Stopping twice is harmless.
	require.NoError(t, inhib.Stop())
}
