package util

import "fmt"

// FormatCountdown renders remaining seconds as MM:SS from one minute up,
// and as "Ns" below that. Negative values render as "0s".
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds >= 60 {
		return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}
