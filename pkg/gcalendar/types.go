package gcalendar

import "time"

// BusyBlock is one occupied span reported by the calendar feed, half-open
// [Start, End).
type BusyBlock struct {
	Start time.Time
	End   time.Time
}

// ListBusyRequest is the input for querying busy blocks.
type ListBusyRequest struct {
	CalendarID string // defaults to "primary"
	TimeMin    time.Time
	TimeMax    time.Time
}
