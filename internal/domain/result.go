package domain

import "time"

// Result holds the category totals of one computation pass.
type Result struct {
	OffClient        float64
	ClientWork       float64
	Travel           float64
	OffClientDetails []OffClientEntry
}

// Total returns the sum of the three category totals.
func (r Result) Total() float64 {
	return r.OffClient + r.ClientWork + r.Travel
}

// CategoryHours returns the total for a single category.
func (r Result) CategoryHours(c Category) float64 {
	switch c {
	case CategoryOffClient:
		return r.OffClient
	case CategoryClientWork:
		return r.ClientWork
	case CategoryTravel:
		return r.Travel
	default:
		return 0
	}
}

// DayTotal is one row of the per-day breakdown. Day is midnight UTC.
type DayTotal struct {
	Day   time.Time
	Hours float64
}
