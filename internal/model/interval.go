package model

import "time"

// BookedInterval is one occupied block from the calendar feed, half-open
// [Start, End). Immutable once loaded; a request builds its own slice.
type BookedInterval struct {
	Start time.Time
	End   time.Time
}

// midday normalizes a date probe to 12:00 of its calendar day. Probing at
// midday keeps day-granularity tests stable against timezone rounding at
// midnight boundaries.
func midday(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, d.Location())
}

// DateBooked reports whether the calendar day of d falls inside any interval.
func DateBooked(d time.Time, intervals []BookedInterval) bool {
	probe := midday(d)
	for _, iv := range intervals {
		if !probe.Before(iv.Start) && probe.Before(iv.End) {
			return true
		}
	}
	return false
}

// RangeBooked reports whether any calendar day in [start, end) is booked.
// Scans day by day so it composes exactly with the single-date test; ranges
// here are at most a few weeks.
func RangeBooked(start, end time.Time, intervals []BookedInterval) bool {
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		if DateBooked(day, intervals) {
			return true
		}
	}
	return false
}
