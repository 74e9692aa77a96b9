package tui

import (
	"fmt"
	"time"
)

const kmPerMile = 1.60934

// formatDistance renders a km value in the configured display unit.
func formatDistance(km float64, unit string) string {
	if unit == "mi" {
		return fmt.Sprintf("%.1f mi", km/kmPerMile)
	}
	return fmt.Sprintf("%.1f km", km)
}

// formatOptional renders a possibly-undefined metric.
func formatOptional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

func formatDate(d time.Time) string {
	return d.Format("Jan 02")
}

// countLabel renders "1 row" / "3 rows".
func countLabel(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
