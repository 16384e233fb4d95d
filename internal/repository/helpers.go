package repository

import "time"

// dayLayout stores run days as plain calendar dates.
const dayLayout = "2006-01-02"

func formatDay(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

func parseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}

// timestampLayout keeps nanoseconds at a fixed width so stored timestamps
// sort as text in the same order as in time.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
