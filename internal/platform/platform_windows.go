//go:build windows

package platform

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sys/windows"
)

const (
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
	esContinuous      = 0x80000000

	swHide    = 0
	swRestore = 9

	executionStateRefresh = 30 * time.Second
)

var (
	kernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	user32                      = windows.NewLazySystemDLL("user32.dll")
	procSetThreadExecutionState = kernel32.NewProc("SetThreadExecutionState")
	procGetConsoleWindow        = kernel32.NewProc("GetConsoleWindow")
	procShowWindow              = user32.NewProc("ShowWindow")
	procSetForegroundWindow     = user32.NewProc("SetForegroundWindow")
)

func setExecutionState(flags uintptr) error {
	r1, _, err := procSetThreadExecutionState.Call(flags)
	if r1 == 0 {
		return err
	}
	return nil
}

// windowsSleepInhibitor pins one OS thread and keeps its execution state
// set to system+display required. The state belongs to that thread, so set,
// refresh and reset all happen there.
type windowsSleepInhibitor struct {
	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan error
	running bool
}

func (k *windowsSleepInhibitor) Start(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.running {
		return nil
	}

	ctx, k.cancel = context.WithCancel(ctx)
	started := make(chan error, 1)
	k.done = make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if err := setExecutionState(esSystemRequired | esDisplayRequired | esContinuous); err != nil {
			started <- err
			return
		}
		started <- nil

		ticker := time.NewTicker(executionStateRefresh)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				k.done <- setExecutionState(esContinuous)
				return
			case <-ticker.C:
				_ = setExecutionState(esSystemRequired | esDisplayRequired | esContinuous)
			}
		}
	}()

	if err := <-started; err != nil {
		k.cancel()
		return err
	}
	k.running = true
	return nil
}

func (k *windowsSleepInhibitor) Stop() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.running {
		return nil
	}
	k.running = false
	k.cancel()
	return <-k.done
}

// NewSleepInhibitor returns the SetThreadExecutionState backed inhibitor.
func NewSleepInhibitor() (SleepInhibitor, error) {
	return &windowsSleepInhibitor{}, nil
}

// HideWindow hides the console window hosting the UI.
func HideWindow() error {
	return showConsole(swHide)
}

// ShowWindow restores the console window and brings it to the front.
func ShowWindow() error {
	if err := showConsole(swRestore); err != nil {
		return err
	}
	hwnd, _, _ := procGetConsoleWindow.Call()
	procSetForegroundWindow.Call(hwnd)
	return nil
}

func showConsole(cmd uintptr) error {
	hwnd, _, err := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return err
	}
	procShowWindow.Call(hwnd, cmd)
	return nil
}
