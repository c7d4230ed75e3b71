package model

import "time"

// Week is the canonical Saturday-to-Saturday booking unit, half-open
// [Start, End). Derived, never stored: every date maps to exactly one Week.
type Week struct {
	Start  time.Time
	End    time.Time // always Start + 7 days
	Booked bool      // any day in the span intersects a BookedInterval
	Price  *float64  // price band lookup on Start; nil means not offered
}

// Available is the single bookability predicate: a week with no booking and a
// known price. A nil price is a business rule, not a bug: undefined pricing
// means the week is not yet offered.
func (w Week) Available() bool {
	return !w.Booked && w.Price != nil
}
