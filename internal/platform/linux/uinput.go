//go:build linux

// Package linux implements input injection through the uinput kernel
// interface.
package linux

import (
	"fmt"
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// uinput constants.
const (
	uinputDevicePath = "/dev/uinput"
	uinputBusTypeUSB = 0x03
	uinputVendorID   = 0x1d6b
	uinputProductID  = 0x0104
	uinputDeviceName = "idleguard-virtual-input"

	// Linux input event types
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02

	relX     = 0x00
	relY     = 0x01
	relWheel = 0x08

	// uinput ioctl commands
	uiSetEvbit   = 0x40045564 // _IOW('U', 100, int)
	uiSetKeybit  = 0x40045565 // _IOW('U', 101, int)
	uiSetRelbit  = 0x40045566 // _IOW('U', 102, int)
	uiDevCreate  = 0x5501     // _IO('U', 1)
	uiDevDestroy = 0x5502     // _IO('U', 2)

	// udev needs a moment before the new device accepts events.
	deviceSettleDelay = 200 * time.Millisecond
)

// Key codes from linux/input-event-codes.h.
const (
	KeyPageUp   uint16 = 104
	KeyDown     uint16 = 108
	KeyPageDown uint16 = 109
)

var supportedKeys = []uint16{KeyPageUp, KeyDown, KeyPageDown}

type uinputUserDev struct {
	name [80]byte
	id   struct {
		bustype uint16
		vendor  uint16
		product uint16
		version uint16
	}
	ffEffectsMax uint32
	absmax       [64]int32
	absmin       [64]int32
	absfuzz      [64]int32
	absflat      [64]int32
}

type inputEvent struct {
	time  unix.Timeval
	etype uint16
	code  uint16
	value int32
}

// UinputSimulator owns a virtual device able to move the pointer, turn the
// wheel and press a few navigation keys.
type UinputSimulator struct {
	fd   uintptr
	file *os.File
}

// Setup opens /dev/uinput and creates the virtual device.
func (u *UinputSimulator) Setup() error {
	f, err := os.OpenFile(uinputDevicePath, os.O_WRONLY|unix.O_NONBLOCK, 0660)
	if err != nil {
		return fmt.Errorf("failed to open uinput device: %w", err)
	}
	u.file = f
	u.fd = f.Fd()

	if err := u.enableCapabilities(); err != nil {
		u.Close()
		return fmt.Errorf("failed to enable device capabilities: %w", err)
	}

	if err := u.createDevice(); err != nil {
		u.Close()
		return fmt.Errorf("failed to create uinput device: %w", err)
	}

	time.Sleep(deviceSettleDelay)
	return nil
}

func (u *UinputSimulator) ioctl(cmd, arg uintptr) error {
	return unix.IoctlSetInt(int(u.fd), uint(cmd), int(arg))
}

func (u *UinputSimulator) enableCapabilities() error {
	for _, ev := range []uintptr{evKey, evRel} {
		if err := u.ioctl(uiSetEvbit, ev); err != nil {
			return err
		}
	}
	for _, rel := range []uintptr{relX, relY, relWheel} {
		if err := u.ioctl(uiSetRelbit, rel); err != nil {
			return err
		}
	}
	for _, key := range supportedKeys {
		if err := u.ioctl(uiSetKeybit, uintptr(key)); err != nil {
			return err
		}
	}
	return nil
}

func (u *UinputSimulator) createDevice() error {
	var dev uinputUserDev
	copy(dev.name[:], uinputDeviceName)
	dev.id.bustype = uinputBusTypeUSB
	dev.id.vendor = uinputVendorID
	dev.id.product = uinputProductID

	if _, err := unix.Write(int(u.fd), (*[unsafe.Sizeof(dev)]byte)(unsafe.Pointer(&dev))[:]); err != nil {
		return err
	}
	return u.ioctl(uiDevCreate, 0)
}

func (u *UinputSimulator) emit(events ...inputEvent) error {
	if u.file == nil {
		return fmt.Errorf("uinput device is closed")
	}
	events = append(events, inputEvent{etype: evSyn})
	for _, ev := range events {
		if _, err := unix.Write(int(u.fd), (*[unsafe.Sizeof(ev)]byte)(unsafe.Pointer(&ev))[:]); err != nil {
			return err
		}
	}
	return nil
}

// Move moves the pointer by the specified relative amounts.
func (u *UinputSimulator) Move(dx, dy int32) error {
	return u.emit(
		inputEvent{etype: evRel, code: relX, value: dx},
		inputEvent{etype: evRel, code: relY, value: dy},
	)
}

// Wheel turns the vertical wheel. Positive values scroll up.
func (u *UinputSimulator) Wheel(notches int32) error {
	if notches == 0 {
		return nil
	}
	return u.emit(inputEvent{etype: evRel, code: relWheel, value: notches})
}

// Tap presses and releases a key.
func (u *UinputSimulator) Tap(code uint16) error {
	if err := u.emit(inputEvent{etype: evKey, code: code, value: 1}); err != nil {
		return err
	}
	return u.emit(inputEvent{etype: evKey, code: code, value: 0})
}

// Close releases the uinput device.
func (u *UinputSimulator) Close() {
	if u.fd != 0 {
		_ = u.ioctl(uiDevDestroy, 0)
	}
	if u.file != nil {
		u.file.Close()
		u.file = nil
	}
	u.fd = 0
}
