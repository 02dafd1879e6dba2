package tray

import (
	"encoding/binary"
	"runtime"
	"testing"
	"time"

	"github.com/stigoleg/idleguard/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconHeader(t *testing.T) {
	icon := Icon()

	require.Len(t, icon, 22+40+16*16*4+16*4)
	assert.Equal(t, []byte{0, 0, 1, 0, 1, 0}, icon[:6])
	assert.Equal(t, byte(16), icon[6])
	assert.Equal(t, uint32(len(icon)-22), binary.LittleEndian.Uint32(icon[14:]))
	assert.Equal(t, uint32(22), binary.LittleEndian.Uint32(icon[18:]))
	assert.Equal(t, uint32(40), binary.LittleEndian.Uint32(icon[22:]))
}

func TestIconShape(t *testing.T) {
	assert.False(t, insideRounded(0, 0, 16), "border is transparent")
	assert.False(t, insideRounded(1, 1, 16), "corners are rounded")
	assert.True(t, insideRounded(8, 8, 16))
	assert.True(t, insideRounded(1, 8, 16))
	assert.False(t, insideRounded(15, 8, 16))
}

func TestCallbacks(t *testing.T) {
	var shown, exited int
	tr := New("idleguard", "tip", Callbacks{
		OnShow: func() { shown++ },
		OnExit: func() { exited++ },
	})
	tr.show()
	tr.exit()
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, exited)

	New("x", "y", Callbacks{}).show()
}

func TestUnsupportedPlatform(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tray is supported here")
	}
	tr := New("idleguard", "tip", Callbacks{})
	assert.ErrorIs(t, tr.Show(), platform.ErrUnsupported)
	assert.False(t, tr.Visible())
	tr.Hide()
	assert.NoError(t, tr.Close())
}

func TestSlowStartLaunchesOnce(t *testing.T) {
	tr := New("idleguard", "tip", Callbacks{})
	tr.readyTimeout = 10 * time.Millisecond

	var launches, shutdowns int
	var ready func()
	tr.launch = func(onReady, onExit func()) error {
		launches++
		ready = onReady
		return nil
	}
	tr.shutdown = func() error {
		shutdowns++
		return nil
	}

	require.Error(t, tr.Show())
	require.Error(t, tr.Show())
	assert.Equal(t, 1, launches, "a pending loop is waited on, not relaunched")
	assert.False(t, tr.Visible())

	ready()
	require.NoError(t, tr.Show())
	assert.True(t, tr.Visible())
	assert.Equal(t, 1, launches)

	tr.Hide()
	require.NoError(t, tr.Show())
	assert.Equal(t, 1, launches)

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())
	assert.Equal(t, 1, shutdowns)
	assert.Error(t, tr.Show(), "a closed tray stays closed")
}
