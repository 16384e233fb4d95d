package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaily_AddIgnoresTimeOfDay(t *testing.T) {
	d := NewDaily()
	d.Add(time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC), 1.5)
	d.Add(time.Date(2025, 6, 10, 17, 30, 0, 0, time.UTC), 0.5)
	d.Add(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), 3)

	assert.Equal(t, 2, d.Len())
	h, ok := d.Hours(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.InDelta(t, 2.0, h, 1e-9)
	assert.InDelta(t, 5.0, d.Total(), 1e-9)
}

func TestDaily_DaysSorted(t *testing.T) {
	d := NewDaily()
	d.Add(time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), 1)
	d.Add(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 2)
	d.Add(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), 3)

	days := d.Days()
	require.Len(t, days, 3)
	assert.Equal(t, 10, days[0].Day.Day())
	assert.Equal(t, 11, days[1].Day.Day())
	assert.Equal(t, 12, days[2].Day.Day())
	assert.Equal(t, 2.0, days[0].Hours)
}

func TestDaily_Reset(t *testing.T) {
	d := NewDaily()
	d.Add(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 2)
	d.Reset()

	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Days())
	_, ok := d.Hours(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}
