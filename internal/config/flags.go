package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/stigoleg/idleguard/internal/hotkey"
	"github.com/stigoleg/idleguard/internal/session"
	"github.com/stigoleg/idleguard/internal/ui"
)

const (
	AppName        = "idleguard"
	AppDescription = "Keeps a session from going idle by simulating light keyboard and mouse activity."

	DefaultInterval = 60
	DefaultLogFile  = "idleguard.log"
)

// Config holds the presets for the window plus process-level switches.
type Config struct {
	IntervalSeconds int
	Modes           session.ModeSet
	Theme           session.Theme
	AutoStart       bool
	Hotkey          string
	NoTray          bool
	PreventSleep    bool
	LogFile         string
	ShowVersion     bool
}

// Flags holds the raw flag values before validation.
type Flags struct {
	Interval     string
	Modes        string
	Theme        string
	Start        bool
	Hotkey       string
	NoTray       bool
	PreventSleep bool
	LogFile      string
	Version      bool
}

// NewFlagSet declares every flag on a fresh set bound to f.
func NewFlagSet(f *Flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringVarP(&f.Interval, "interval", "i", fmt.Sprint(DefaultInterval), "Seconds between actions (minimum 10)")
	fs.StringVarP(&f.Modes, "modes", "m", "keyboard", "Comma separated input types: keyboard, scroll, move, superclean")
	fs.StringVarP(&f.Theme, "theme", "t", "light", "Color theme: light or dark")
	fs.BoolVarP(&f.Start, "start", "s", false, "Start simulating immediately")
	fs.StringVar(&f.Hotkey, "hotkey", hotkey.DefaultCombo, "Global start/stop hotkey")
	fs.BoolVar(&f.NoTray, "no-tray", false, "Disable minimize to tray")
	fs.BoolVar(&f.PreventSleep, "prevent-sleep", true, "Keep the system awake while running")
	fs.StringVar(&f.LogFile, "log-file", DefaultLogFile, "Debug log destination")
	fs.BoolVarP(&f.Version, "version", "v", false, "Show version information")
	return fs
}

// Parse parses args (without the program name) into a validated Config.
// It returns pflag.ErrHelp when help was requested.
func Parse(args []string) (*Config, error) {
	var f Flags
	fs := NewFlagSet(&f)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return f.validate()
}

func (f Flags) validate() (*Config, error) {
	cfg := &Config{
		AutoStart:    f.Start,
		NoTray:       f.NoTray,
		PreventSleep: f.PreventSleep,
		LogFile:      f.LogFile,
		ShowVersion:  f.Version,
	}
	if f.Version {
		return cfg, nil
	}

	var err error
	if cfg.IntervalSeconds, err = session.ParseInterval(f.Interval); err != nil {
		return nil, fmt.Errorf("--interval: %w", err)
	}
	if cfg.Modes, err = session.ParseModes(f.Modes); err != nil {
		return nil, fmt.Errorf("--modes: %w", err)
	}
	if cfg.Theme, err = session.ParseTheme(f.Theme); err != nil {
		return nil, fmt.Errorf("--theme: %w", err)
	}
	if _, err = hotkey.ParseCombo(f.Hotkey); err != nil {
		return nil, fmt.Errorf("--hotkey: %w", err)
	}
	cfg.Hotkey = f.Hotkey
	if strings.TrimSpace(cfg.LogFile) == "" {
		return nil, errors.New("--log-file: must not be empty")
	}
	return cfg, nil
}

// ParseFlags parses os.Args. Help and version are printed here and exit
// the process, as do invalid values.
func ParseFlags(version string) (*Config, error) {
	cfg, err := Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Print(Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Println(formatError(err))
		os.Exit(1)
	}
	if cfg.ShowVersion {
		fmt.Printf("idleguard version: %s\n", version)
		os.Exit(0)
	}
	return cfg, nil
}

// Usage renders the help screen.
func Usage() string {
	s := ui.StyleFor(session.ThemeDark)
	var f Flags
	var b strings.Builder
	b.WriteString(s.Title.Render(AppName) + "\n")
	b.WriteString(s.Help.Render(AppDescription) + "\n\n")
	b.WriteString("Usage:\n  " + AppName + " [flags]\n\nFlags:\n")
	b.WriteString(NewFlagSet(&f).FlagUsages())
	b.WriteString("\nKeys:\n  tab/shift+tab move focus, space toggles, enter starts or stops,\n  ctrl+t start/stop, m minimize to tray, ? help, q quit\n")
	return b.String()
}

func formatError(err error) string {
	s := ui.StyleFor(session.ThemeDark)
	return s.Error.Bold(true).Render("Error: ") + s.Help.Render(err.Error())
}
