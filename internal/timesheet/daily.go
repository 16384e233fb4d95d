package timesheet

import (
	"sort"
	"time"

	"github.com/alexanderramin/gestemps/internal/domain"
)

// Daily accumulates hours per calendar day. Keys never carry a time
// component. A Daily is not safe for concurrent use.
type Daily struct {
	hours map[time.Time]float64
}

func NewDaily() *Daily {
	return &Daily{hours: make(map[time.Time]float64)}
}

// Add folds hours into the given day.
func (d *Daily) Add(day time.Time, hours float64) {
	d.hours[truncateDay(day)] += hours
}

// Reset drops every accumulated day.
func (d *Daily) Reset() {
	clear(d.hours)
}

// Hours returns the accumulated hours for day and whether the day is known.
func (d *Daily) Hours(day time.Time) (float64, bool) {
	h, ok := d.hours[truncateDay(day)]
	return h, ok
}

func (d *Daily) Len() int {
	return len(d.hours)
}

// Total returns the sum over every day.
func (d *Daily) Total() float64 {
	var total float64
	for _, h := range d.hours {
		total += h
	}
	return total
}

// Days returns a snapshot sorted by day.
func (d *Daily) Days() []domain.DayTotal {
	days := make([]domain.DayTotal, 0, len(d.hours))
	for day, h := range d.hours {
		days = append(days, domain.DayTotal{Day: day, Hours: h})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Before(days[j].Day)
	})
	return days
}
