package testutil

import (
	"strings"
	"time"

	"github.com/alexanderramin/gestemps/internal/domain"
	"github.com/google/uuid"
)

// OffClientLine builds one code/description/start/end line.
func OffClientLine(code, description, start, end string) string {
	return strings.Join([]string{code, description, start, end}, "\t")
}

// OnClientOption customizes a generated on-client line.
type OnClientOption func(fields []string)

// WithClient sets the client column.
func WithClient(name string) OnClientOption {
	return func(fields []string) {
		fields[1] = name
	}
}

// WithStatus sets the work order status column.
func WithStatus(status string) OnClientOption {
	return func(fields []string) {
		fields[3] = status
	}
}

// OnClientLine builds a sixteen-column work order export line with the
// date in column 9 and the work/travel durations in the last two columns.
func OnClientLine(workOrder, date, work, travel string, opts ...OnClientOption) string {
	fields := []string{
		workOrder, "Client Test", "Intervention", "Clôturé",
		"10/06/2025 08:00", "10/06/2025 09:00", "-", "-",
		date, "10/06/2025 10:00", "-", "-", "-", "-",
		work, travel,
	}
	for _, opt := range opts {
		opt(fields)
	}
	return strings.Join(fields, "\t")
}

// Lines joins lines with newlines.
func Lines(lines ...string) string {
	return strings.Join(lines, "\n")
}

// Run options
type RunOption func(*domain.Run)

func WithComputedAt(t time.Time) RunOption {
	return func(r *domain.Run) {
		r.ComputedAt = t
	}
}

func WithDays(days ...domain.DayTotal) RunOption {
	return func(r *domain.Run) {
		r.Days = days
	}
}

func WithEntries(entries ...domain.OffClientEntry) RunOption {
	return func(r *domain.Run) {
		r.Result.OffClientDetails = entries
		r.Result.OffClient = 0
		for _, e := range entries {
			r.Result.OffClient += e.Hours
		}
	}
}

// NewTestRun returns a run with fixed category totals and no details.
func NewTestRun(opts ...RunOption) *domain.Run {
	r := &domain.Run{
		ID:         uuid.New().String(),
		ComputedAt: time.Now().UTC().Truncate(time.Second),
		Result: domain.Result{
			OffClient:  2,
			ClientWork: 1.3,
			Travel:     0.6,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
