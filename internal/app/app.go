// Package app holds the controller that owns the session: the selected
// modes and theme, the action scheduler, and the tray and hotkey bridges.
package app

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/stigoleg/idleguard/internal/humanize"
	"github.com/stigoleg/idleguard/internal/platform"
	"github.com/stigoleg/idleguard/internal/scheduler"
	"github.com/stigoleg/idleguard/internal/session"
)

// ErrTrayDisabled is returned by Minimize when no tray is attached.
var ErrTrayDisabled = errors.New("minimize to tray is disabled")

// Window hides and restores the application window.
type Window interface {
	Hide() error
	Show() error
}

// TrayIcon is the notification-area icon shown while minimized.
type TrayIcon interface {
	Show() error
	Hide()
	Close() error
}

// Hotkey is a global key registration.
type Hotkey interface {
	Start() error
	Stop() error
}

// Options configures a Controller. Only Injector is required.
type Options struct {
	Injector  platform.Injector
	Inhibitor platform.SleepInhibitor
	Sleeper   humanize.Sleeper
	Clock     scheduler.Clock
	Rand      *rand.Rand
	Window    Window

	Modes session.ModeSet
	Theme session.Theme

	CleanupTimeout time.Duration
}

// Controller is the single owner of session state.
type Controller struct {
	mu        sync.Mutex
	modes     session.ModeSet
	theme     session.Theme
	minimized bool
	notify    func(any)

	window Window
	tray   TrayIcon
	hotkey Hotkey

	sched   *scheduler.Scheduler
	cleanup *CleanupManager
}

// New creates a controller with the scheduler stopped.
func New(opts Options) *Controller {
	c := &Controller{
		modes:   opts.Modes,
		theme:   opts.Theme,
		window:  opts.Window,
		cleanup: NewCleanupManager(opts.CleanupTimeout),
	}
	c.sched = scheduler.New(scheduler.Config{
		Injector:  opts.Injector,
		Sleeper:   opts.Sleeper,
		Rand:      opts.Rand,
		Clock:     opts.Clock,
		Inhibitor: opts.Inhibitor,
		OnFire:    func(r scheduler.Report) { c.emit(FiredMsg{Report: r}) },
		OnTick:    func(n int) { c.emit(TickMsg{Remaining: n}) },
	})
	c.cleanup.Register("scheduler", c.sched.Stop)
	return c
}

// SetNotifier installs the function that receives FiredMsg, TickMsg,
// ToggleMsg, RestoreMsg and QuitMsg values. It must not block.
func (c *Controller) SetNotifier(fn func(any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = fn
}

func (c *Controller) emit(msg any) {
	c.mu.Lock()
	fn := c.notify
	c.mu.Unlock()
	if fn != nil {
		fn(msg)
	}
}

// AttachHotkey registers h and releases it on Close. A registration
// failure is logged and the hotkey stays unavailable.
func (c *Controller) AttachHotkey(h Hotkey) {
	c.mu.Lock()
	c.hotkey = h
	c.mu.Unlock()

	if err := h.Start(); err != nil {
		log.Printf("app: global hotkey unavailable: %v", err)
		return
	}
	c.cleanup.Register("hotkey", h.Stop)
}

// AttachTray enables minimize-to-tray.
func (c *Controller) AttachTray(t TrayIcon) {
	c.mu.Lock()
	c.tray = t
	c.mu.Unlock()
	c.cleanup.Register("tray", t.Close)
}

// HotkeyPressed forwards a hotkey press to the UI.
func (c *Controller) HotkeyPressed() { c.emit(ToggleMsg{}) }

// TrayShowClicked forwards the tray's Show entry to the UI.
func (c *Controller) TrayShowClicked() { c.emit(RestoreMsg{}) }

// TrayExitClicked forwards the tray's Exit entry to the UI.
func (c *Controller) TrayExitClicked() { c.emit(QuitMsg{}) }

// State returns a snapshot for rendering. While stopped, Modes reflects
// the current selection rather than the last run.
func (c *Controller) State() session.State {
	st := c.sched.Snapshot()
	c.mu.Lock()
	defer c.mu.Unlock()
	st.Theme = c.theme
	if !st.Running {
		st.Modes = c.modes
	}
	return st
}

// Running reports whether the action loop is active.
func (c *Controller) Running() bool { return c.sched.IsRunning() }

// Modes returns the current selection.
func (c *Controller) Modes() session.ModeSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modes
}

// ToggleMode flips m in the selection. The selection is locked while the
// action loop runs.
func (c *Controller) ToggleMode(m session.Mode) session.ModeSet {
	running := c.sched.IsRunning()
	c.mu.Lock()
	defer c.mu.Unlock()
	if running {
		return c.modes
	}
	c.modes = c.modes.Toggle(m)
	return c.modes
}

// Theme returns the active theme.
func (c *Controller) Theme() session.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// SetTheme switches the theme immediately.
func (c *Controller) SetTheme(t session.Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.theme = t
}

// Start parses the interval text and starts the action loop with the
// current selection.
func (c *Controller) Start(intervalText string) error {
	n, err := session.ParseInterval(intervalText)
	if err != nil {
		return err
	}
	return c.StartSeconds(n)
}

// StartSeconds starts the action loop.
func (c *Controller) StartSeconds(intervalSeconds int) error {
	return c.sched.Start(intervalSeconds, c.Modes())
}

// Stop halts the action loop.
func (c *Controller) Stop() error {
	return c.sched.Stop()
}

// Toggle stops a running loop or starts a stopped one, exactly like the
// Start/Stop button.
func (c *Controller) Toggle(intervalText string) error {
	if c.sched.IsRunning() {
		return c.Stop()
	}
	return c.Start(intervalText)
}

// Minimized reports whether the window is in the tray.
func (c *Controller) Minimized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minimized
}

// Minimize shows the tray icon and hides the window.
func (c *Controller) Minimize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tray == nil {
		return ErrTrayDisabled
	}
	if c.minimized {
		return nil
	}
	if err := c.tray.Show(); err != nil {
		return fmt.Errorf("show tray icon: %w", err)
	}
	if c.window != nil {
		if err := c.window.Hide(); err != nil {
			log.Printf("app: hide window: %v", err)
		}
	}
	c.minimized = true
	log.Printf("app: minimized to tray")
	return nil
}

// Restore brings the window back and retires the tray icon.
func (c *Controller) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.minimized {
		return nil
	}
	var err error
	if c.window != nil {
		err = c.window.Show()
	}
	if c.tray != nil {
		c.tray.Hide()
	}
	c.minimized = false
	log.Printf("app: restored from tray")
	return err
}

// Close stops the loop and releases the hotkey, tray and sleep inhibitor.
// It is safe to call more than once.
func (c *Controller) Close() error {
	return c.cleanup.Execute()
}
