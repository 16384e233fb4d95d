package timesheet

import (
	"strings"
	"time"
)

// DurationHours returns the elapsed hours between two primary-layout
// timestamps. Empty input yields 0 with ok=true. A timestamp that does not
// parse yields 0 with ok=false so the caller can report it. The result is
// signed: an end before the start gives a negative value.
func DurationHours(start, end string) (hours float64, ok bool) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		return 0, true
	}

	s, err := time.Parse(primaryLayout, start)
	if err != nil {
		return 0, false
	}
	e, err := time.Parse(primaryLayout, end)
	if err != nil {
		return 0, false
	}

	// Unix seconds rather than Sub, whose Duration saturates past ~292 years.
	return float64(e.Unix()-s.Unix()) / 3600, true
}
