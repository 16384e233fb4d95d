package timesheet

import (
	"fmt"
	"math"
)

// FormatHoursMinutes renders decimal hours as zero-padded HHhMM, e.g.
// 2.5 -> "02h30". Minutes are floored, never rounded.
func FormatHoursMinutes(hours float64) string {
	sign := ""
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	h := math.Floor(hours)
	m := math.Floor((hours - h) * 60)
	return fmt.Sprintf("%s%02dh%02d", sign, int(h), int(m))
}
