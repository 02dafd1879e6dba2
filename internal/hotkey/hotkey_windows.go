//go:build windows

package hotkey

import (
	"errors"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procRegisterHotKey     = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey   = user32.NewProc("UnregisterHotKey")
	procGetMessage         = user32.NewProc("GetMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
)

const (
	wmHotkey = 0x0312
	wmQuit   = 0x0012

	hotkeyID = 1
)

type msg struct {
	Hwnd    windows.Handle
	Message uint32
	Wparam  uintptr
	Lparam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// startPlatform registers the hotkey on a dedicated OS thread. WM_HOTKEY is
// posted to the registering thread's queue, so the same thread runs the
// message loop until WM_QUIT.
func (m *Manager) startPlatform() (func() error, error) {
	type result struct {
		tid uint32
		err error
	}
	ready := make(chan result, 1)
	done := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(done)

		ok, _, callErr := procRegisterHotKey.Call(0, hotkeyID,
			uintptr(m.combo.Modifiers|ModNoRepeat), uintptr(m.combo.Key))
		if ok == 0 {
			ready <- result{err: callErr}
			return
		}
		ready <- result{tid: windows.GetCurrentThreadId()}

		var mm msg
		for {
			ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&mm)), 0, 0, 0)
			if int32(ret) <= 0 {
				break
			}
			if mm.Message == wmHotkey && mm.Wparam == hotkeyID {
				m.trigger()
			}
		}
		procUnregisterHotKey.Call(0, hotkeyID)
	}()

	r := <-ready
	if r.err != nil {
		<-done
		return nil, r.err
	}

	return func() error {
		ok, _, err := procPostThreadMessageW.Call(uintptr(r.tid), wmQuit, 0, 0)
		if ok == 0 {
			return errors.Join(errors.New("post quit to hotkey thread"), err)
		}
		<-done
		return nil
	}, nil
}
