package domain

import "time"

// Run is a persisted computation pass.
type Run struct {
	ID               string
	ComputedAt       time.Time
	Result           Result
	Days             []DayTotal
	DiagnosticsCount int
}
