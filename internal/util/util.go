package util

import (
	"fmt"
	"strconv"
	"time"
)

// FormatCount abbreviates counts of a thousand or more (e.g., 1234 -> "1.2k").
func FormatCount(count int64) string {
	if count >= 1000 {
		return fmt.Sprintf("%.1fk", float64(count)/1000)
	}

	return strconv.FormatInt(count, 10)
}

// FormatMiles formats a distance for display (e.g., "2.4 mi").
func FormatMiles(miles float64) string {
	return fmt.Sprintf("%.1f mi", miles)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
