// Package util holds small formatting helpers for log lines and client messages.
package util

import (
	"fmt"
	"time"
)

// FormatBytes renders a size with binary units, e.g. "512 B" or "5.0 MB".
func FormatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	const prefixes = "KMGTPE"
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < len(prefixes)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), prefixes[exp])
}

// FormatDuration renders a duration rounded to the second as "45s", "5m10s" or "1h30m".
// Durations of a day or more keep counting hours.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
