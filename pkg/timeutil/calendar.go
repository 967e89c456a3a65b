// Package timeutil provides the calendar arithmetic shared by the ledger,
// the aggregator, and the CLI: local-day bucketing, Monday-based weeks, and
// human time-window parsing.
package timeutil

import "time"

const layoutISO = "2006-01-02"

// StartOfDay returns local midnight for the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Local().Location())
}

// StartOfWeek returns local midnight of the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := -6
	if wd := day.Weekday(); wd != time.Sunday {
		offset = 1 - int(wd)
	}
	return day.AddDate(0, 0, offset)
}

// StartOfMonth returns local midnight of the first day of the month
// containing t.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Local().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Local().Location())
}

// DayKey renders the local calendar date of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Local().Format(layoutISO)
}

// SameLocalDay reports whether both times fall on the same local calendar day.
func SameLocalDay(a, b time.Time) bool {
	return Timestamp{Time: a}.SameDay(b)
}
