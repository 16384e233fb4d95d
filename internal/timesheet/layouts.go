package timesheet

import (
	"strings"
	"time"
)

// primaryLayout is the day/month/year hour:minute form used by both blocks.
const primaryLayout = "02/01/2006 15:04"

// OffClientDateLayouts are tried in order on the start text of an
// off-client line to find its aggregation day.
var OffClientDateLayouts = []string{
	primaryLayout,
	"02/01/2006 15:04:05",
	"2006-01-02 15:04",
}

// OnClientDateLayouts are tried in order on the date column of an
// on-client line. Only the date portion of the match is kept.
var OnClientDateLayouts = []string{
	primaryLayout,
	"2006-01-02",
	"02-01-2006",
	"02.01.2006",
}

// TryParse parses text with each layout in turn and returns the calendar
// day (midnight UTC) of the first match.
func TryParse(text string, layouts []string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return truncateDay(t), true
		}
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
