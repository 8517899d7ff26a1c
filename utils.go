package ssdrefresh

import (
	"errors"
	"fmt"
	"math"
	"os"
)

func byteCountSI(b int64) string {
	const unit = 1000
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB",
		float64(b)/float64(div), "kMGTPE"[exp])
}

// FormatDuration renders seconds as "1h 2m 3s", "2m 3s" or "3s".
// All components are truncated.
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	hrs := int64(seconds / 3600)
	mins := int64(math.Mod(seconds, 3600) / 60)
	secs := int64(math.Mod(seconds, 60))
	if hrs > 0 {
		return fmt.Sprintf("%dh %dm %ds", hrs, mins, secs)
	} else if mins > 0 {
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

func openFile(file string) (*os.File, error) {
	if file == "" {
		return nil, errors.New("Got invalid empty file path")
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	return f, nil
}
