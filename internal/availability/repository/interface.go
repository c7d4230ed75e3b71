package repository

import (
	"context"
	"time"

	"rental-availability/internal/model"
)

// CalendarRepository is the interface for the booked-interval data source.
type CalendarRepository interface {
	// BusyIntervals returns every occupied block intersecting [from, to).
	// A feed failure is surfaced as an error, never as an empty slice.
	BusyIntervals(ctx context.Context, from, to time.Time) ([]model.BookedInterval, error)
}
