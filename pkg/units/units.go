// Package units converts byte counts and durations into short human-readable strings.
package units

import (
	"fmt"
	"time"
)

type timeUnit struct {
	name  string
	limit float64
}

var (
	sizeUnits = []string{"kB", "MB", "GB", "TB", "PB"}

	timeUnits = []timeUnit{
		{name: "s", limit: 60},
		{name: "m", limit: 60},
		{name: "h", limit: 24},
	}
)

// HumanSize formats a byte count using 1024-based units: "500 B", "2.0 kB", "1.0 GB".
func HumanSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}

	value := float64(size)
	for _, unit := range sizeUnits {
		value /= 1024
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
	}

	return fmt.Sprintf("%.1f %s", value, sizeUnits[len(sizeUnits)-1])
}

// HumanTime formats seconds as "45.3 s", "2.1 m", "2.0 h" or days.
func HumanTime(seconds float64) string {
	for _, unit := range timeUnits {
		if seconds < unit.limit {
			return fmt.Sprintf("%.1f %s", seconds, unit.name)
		}
		seconds /= unit.limit
	}

	return fmt.Sprintf("%.1f d", seconds)
}

// HumanDuration is HumanTime for a time.Duration.
func HumanDuration(d time.Duration) string {
	return HumanTime(d.Seconds())
}
