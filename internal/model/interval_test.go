package model_test

import (
	"testing"
	"time"

	"rental-availability/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateBooked(t *testing.T) {
	intervals := []model.BookedInterval{
		{Start: day(2026, 7, 4), End: day(2026, 7, 11)},
	}

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"Day before start", day(2026, 7, 3), false},
		{"Start inclusive", day(2026, 7, 4), true},
		{"Mid interval", day(2026, 7, 8), true},
		{"End exclusive", day(2026, 7, 11), false},
		{"Day after end", day(2026, 7, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.DateBooked(tt.d, intervals); got != tt.want {
				t.Errorf("DateBooked(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}

	if model.DateBooked(day(2026, 7, 8), nil) {
		t.Errorf("no intervals should mean not booked")
	}
}

func TestRangeBooked(t *testing.T) {
	intervals := []model.BookedInterval{
		{Start: day(2026, 7, 4), End: day(2026, 7, 11)},
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"Fully before", day(2026, 6, 27), day(2026, 7, 4), false},
		{"Overlaps tail of range", day(2026, 7, 1), day(2026, 7, 8), true},
		{"Fully inside interval", day(2026, 7, 5), day(2026, 7, 7), true},
		{"Starts at interval end", day(2026, 7, 11), day(2026, 7, 18), false},
		{"Empty range", day(2026, 7, 4), day(2026, 7, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.RangeBooked(tt.start, tt.end, intervals); got != tt.want {
				t.Errorf("RangeBooked(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

// Widening a range can only add bookedness, never remove it.
func TestRangeBookedMonotonic(t *testing.T) {
	intervals := []model.BookedInterval{
		{Start: day(2026, 7, 10), End: day(2026, 7, 12)},
	}

	start := day(2026, 7, 1)
	prev := false
	for days := 1; days <= 21; days++ {
		got := model.RangeBooked(start, start.AddDate(0, 0, days), intervals)
		if prev && !got {
			t.Fatalf("bookedness lost when widening to %d days", days)
		}
		prev = got
	}
	if !prev {
		t.Fatalf("expected widened range to eventually hit the interval")
	}
}
