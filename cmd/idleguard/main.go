package main

import (
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/idleguard/internal/app"
	"github.com/stigoleg/idleguard/internal/config"
	"github.com/stigoleg/idleguard/internal/hotkey"
	"github.com/stigoleg/idleguard/internal/platform"
	"github.com/stigoleg/idleguard/internal/tray"
	"github.com/stigoleg/idleguard/internal/ui"
)

const appVersion = "1.0.0"

func main() {
	cfg, err := config.ParseFlags(appVersion)
	if err != nil {
		log.Fatal(err)
	}

	f, err := tea.LogToFile(cfg.LogFile, "idleguard")
	if err != nil {
		log.Fatal(err)
	}

	code := run(cfg)
	f.Close()
	os.Exit(code)
}

func run(cfg *config.Config) int {
	injector, err := platform.NewInjector()
	if err != nil {
		log.Printf("main: input injection unavailable: %v", err)
		injector = platform.UnsupportedInjector()
	}
	if c, ok := injector.(io.Closer); ok {
		defer c.Close()
	}

	var inhibitor platform.SleepInhibitor
	if cfg.PreventSleep {
		if inhibitor, err = platform.NewSleepInhibitor(); err != nil {
			log.Printf("main: sleep prevention unavailable: %v", err)
			inhibitor = nil
		}
	}

	ctrl := app.New(app.Options{
		Injector:  injector,
		Inhibitor: inhibitor,
		Window:    platform.ConsoleWindow{},
		Modes:     cfg.Modes,
		Theme:     cfg.Theme,
	})

	hk, err := hotkey.NewManager(cfg.Hotkey, ctrl.HotkeyPressed)
	if err != nil {
		log.Printf("main: %v", err)
	} else {
		ctrl.AttachHotkey(hk)
	}

	if !cfg.NoTray {
		ctrl.AttachTray(tray.New(config.AppName, config.AppName+": keeping the session active", tray.Callbacks{
			OnShow: ctrl.TrayShowClicked,
			OnExit: ctrl.TrayExitClicked,
		}))
	}

	p := ui.NewProgram(ctrl, ui.Options{
		IntervalSeconds: cfg.IntervalSeconds,
		AutoStart:       cfg.AutoStart,
	}, tea.WithAltScreen(), tea.WithoutSignalHandler())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)

	go func() {
		sig, ok := <-sigChan
		if !ok {
			return
		}
		log.Printf("main: received signal %v", sig)
		p.Quit()
	}()

	code := 0
	if _, err := p.Run(); err != nil {
		log.Printf("main: error running program: %v", err)
		code = 1
	}

	if err := ctrl.Close(); err != nil {
		log.Printf("main: shutdown: %v", err)
	}
	log.Printf("main: exited")
	return code
}
