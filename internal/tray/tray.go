// Package tray shows a notification-area icon while the window is hidden.
package tray

import (
	"encoding/binary"
	"errors"
	"log"
	"sync"
	"time"
)

const (
	readyTimeout = 3 * time.Second
	quitTimeout  = 2 * time.Second
)

// Callbacks are invoked from the tray's own goroutine.
type Callbacks struct {
	OnShow func()
	OnExit func()
}

// Tray owns the icon. The underlying loop is launched once, on the first
// Show, and lives until Close; Hide only marks the window as restored.
type Tray struct {
	mu       sync.Mutex
	title    string
	tooltip  string
	cb       Callbacks
	launched bool
	started  bool
	closed   bool
	visible  bool
	quit     chan struct{}
	ready    chan struct{}
	exited   chan struct{}

	readyTimeout time.Duration
	launch       func(onReady, onExit func()) error
	shutdown     func() error
}

// New creates an idle tray.
func New(title, tooltip string, cb Callbacks) *Tray {
	t := &Tray{
		title:        title,
		tooltip:      tooltip,
		cb:           cb,
		quit:         make(chan struct{}),
		ready:        make(chan struct{}),
		exited:       make(chan struct{}),
		readyTimeout: readyTimeout,
	}
	t.launch = t.launchPlatform
	t.shutdown = t.quitPlatform
	return t
}

// Show puts the icon in the notification area. A loop that was launched
// but is not ready yet is waited on again rather than launched twice.
func (t *Tray) Show() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return errors.New("tray closed")
	}
	if !t.launched {
		err := t.launch(func() { close(t.ready) }, func() { close(t.exited) })
		if err != nil {
			return err
		}
		t.launched = true
	}
	if !t.started {
		select {
		case <-t.ready:
			t.started = true
		case <-time.After(t.readyTimeout):
			return errors.New("tray did not become ready")
		}
	}
	t.visible = true
	log.Printf("tray: shown")
	return nil
}

// Hide is called once the window is back.
func (t *Tray) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.visible {
		t.visible = false
		log.Printf("tray: hidden")
	}
}

// Visible reports whether the window is currently minimized to the tray.
func (t *Tray) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Close removes the icon and stops the tray loop. It is safe to call more
// than once.
func (t *Tray) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	launched := t.launched
	t.visible = false
	t.mu.Unlock()

	if !launched {
		return nil
	}
	close(t.quit)
	return t.shutdown()
}

func (t *Tray) show() {
	log.Printf("tray: show requested")
	if t.cb.OnShow != nil {
		t.cb.OnShow()
	}
}

func (t *Tray) exit() {
	log.Printf("tray: exit requested")
	if t.cb.OnExit != nil {
		t.cb.OnExit()
	}
}

// Icon returns a 16x16 32-bit ICO: a filled rounded square in the accent
// colour on a transparent background.
func Icon() []byte {
	const (
		size      = 16
		headerLen = 6 + 16
		dibLen    = 40
		pixelLen  = size * size * 4
		maskLen   = size * 4 // 1bpp rows padded to 32 bits
		imageLen  = dibLen + pixelLen + maskLen
	)
	icon := make([]byte, headerLen+imageLen)

	// ICONDIR
	binary.LittleEndian.PutUint16(icon[2:], 1)
	binary.LittleEndian.PutUint16(icon[4:], 1)
	// ICONDIRENTRY
	icon[6], icon[7] = size, size
	binary.LittleEndian.PutUint16(icon[10:], 1)
	binary.LittleEndian.PutUint16(icon[12:], 32)
	binary.LittleEndian.PutUint32(icon[14:], imageLen)
	binary.LittleEndian.PutUint32(icon[18:], headerLen)

	// BITMAPINFOHEADER, height doubled for the AND mask
	dib := icon[headerLen:]
	binary.LittleEndian.PutUint32(dib[0:], dibLen)
	binary.LittleEndian.PutUint32(dib[4:], size)
	binary.LittleEndian.PutUint32(dib[8:], size*2)
	binary.LittleEndian.PutUint16(dib[12:], 1)
	binary.LittleEndian.PutUint16(dib[14:], 32)
	binary.LittleEndian.PutUint32(dib[20:], pixelLen+maskLen)

	// BGRA rows, bottom-up
	px := dib[dibLen:]
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if insideRounded(x, y, size) {
				o := (y*size + x) * 4
				px[o], px[o+1], px[o+2], px[o+3] = 0xF4, 0x7B, 0x00, 0xFF
			}
		}
	}
	return icon
}

func insideRounded(x, y, size int) bool {
	const r = 3
	lo, hi := 1, size-2
	if x < lo || x > hi || y < lo || y > hi {
		return false
	}
	cx, cy := x, y
	switch {
	case x < lo+r:
		cx = lo + r
	case x > hi-r:
		cx = hi - r
	}
	switch {
	case y < lo+r:
		cy = lo + r
	case y > hi-r:
		cy = hi - r
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
