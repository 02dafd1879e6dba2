package session

import (
	"errors"
	"fmt"

	"github.com/stigoleg/idleguard/internal/util"
)

const (
	// MinIntervalSeconds is the smallest base interval accepted at start.
	MinIntervalSeconds = 10

	// MinDelaySeconds is the floor applied to every jittered delay.
	MinDelaySeconds = 5

	// SuperCleanThresholdMin and SuperCleanThresholdMax bound the number of
	// SuperClean firings between two Arrow-Down presses.
	SuperCleanThresholdMin = 6
	SuperCleanThresholdMax = 10
)

var (
	ErrInvalidInterval  = errors.New("please enter a valid number for the interval")
	ErrIntervalTooSmall = fmt.Errorf("the interval must be at least %d seconds", MinIntervalSeconds)
	ErrNoModeSelected   = errors.New("please select at least one option (Keyboard, Mouse Scroll, Mouse Move or Super Clean)")
)

// Theme selects the window colors.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light", "":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("unknown theme %q (valid: light, dark)", s)
}

// State is the mutable state of one run. It is reset on every process start.
type State struct {
	Running             bool
	BaseIntervalSeconds int
	RemainingSeconds    int
	Modes               ModeSet
	SuperCleanCounter   int
	SuperCleanThreshold int
	Theme               Theme

	// LastError holds the message of the most recent swallowed action failure.
	LastError string
}

// ValidateInterval checks a user supplied interval.
func ValidateInterval(seconds int) error {
	if seconds < MinIntervalSeconds {
		return ErrIntervalTooSmall
	}
	return nil
}

// ParseInterval parses and validates the interval field text.
func ParseInterval(input string) (int, error) {
	n, err := util.ParseSeconds(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if err := ValidateInterval(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateStart checks everything Start needs before any state is touched.
func ValidateStart(intervalSeconds int, modes ModeSet) error {
	if err := ValidateInterval(intervalSeconds); err != nil {
		return err
	}
	if modes.Empty() {
		return ErrNoModeSelected
	}
	return nil
}
