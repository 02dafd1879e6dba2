//go:build windows

package tray

import (
	"errors"
	"runtime"
	"time"

	"github.com/getlantern/systray"
)

func (t *Tray) launchPlatform(onReady, onExit func()) error {
	go func() {
		// systray creates its window on this thread and pumps messages here.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		systray.Run(func() {
			t.setupMenu()
			onReady()
		}, onExit)
	}()
	return nil
}

func (t *Tray) setupMenu() {
	systray.SetIcon(Icon())
	systray.SetTitle(t.title)
	systray.SetTooltip(t.tooltip)

	show := systray.AddMenuItem("Show", "Restore the window")
	systray.AddSeparator()
	exit := systray.AddMenuItem("Exit", "Quit "+t.title)

	go func() {
		for {
			select {
			case <-show.ClickedCh:
				t.show()
			case <-exit.ClickedCh:
				t.exit()
			case <-t.quit:
				return
			}
		}
	}()
}

func (t *Tray) quitPlatform() error {
	systray.Quit()
	select {
	case <-t.exited:
		return nil
	case <-time.After(quitTimeout):
		return errors.New("tray did not exit in time")
	}
}
