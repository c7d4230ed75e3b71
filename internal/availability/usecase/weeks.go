package usecase

import (
	"time"

	"rental-availability/internal/model"
)

// DefaultLookaheadWeeks bounds the nearest-alternative search.
const DefaultLookaheadWeeks = 8

// SnapToWeekStart maps a date to the latest Saturday at or before it, the
// start of its Sat-Sat week. Idempotent: snapping a Saturday returns it.
func SnapToWeekStart(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	back := (int(d.Weekday()) + 1) % 7
	return d.AddDate(0, 0, -back)
}

// weekInfo builds the Week starting at the given Saturday: occupancy over the
// 7-day span, price band lookup on the start date.
func (uc *implUseCase) weekInfo(start time.Time, intervals []model.BookedInterval) model.Week {
	end := start.AddDate(0, 0, 7)
	return model.Week{
		Start:  start,
		End:    end,
		Booked: model.RangeBooked(start, end, intervals),
		Price:  uc.prices.PriceFor(start),
	}
}

// nextAvailableWeek snaps from and walks forward one week at a time, up to
// the lookahead, returning the first available week. Nil means the search
// was exhausted, which is a reported outcome, not an error.
func (uc *implUseCase) nextAvailableWeek(from time.Time, intervals []model.BookedInterval) *model.Week {
	start := SnapToWeekStart(from)
	for i := 0; i < uc.lookahead; i++ {
		week := uc.weekInfo(start, intervals)
		if week.Available() {
			return &week
		}
		start = start.AddDate(0, 0, 7)
	}
	return nil
}

// availableWeeksBetween snaps rangeStart and collects every available week
// whose start precedes rangeEnd, in chronological order.
func (uc *implUseCase) availableWeeksBetween(rangeStart, rangeEnd time.Time, intervals []model.BookedInterval) []model.Week {
	weeks := []model.Week{}
	for start := SnapToWeekStart(rangeStart); start.Before(rangeEnd); start = start.AddDate(0, 0, 7) {
		if week := uc.weekInfo(start, intervals); week.Available() {
			weeks = append(weeks, week)
		}
	}
	return weeks
}

// fetchWindow is the busy-interval window an intent needs: the full vague
// window, or the snapped start plus the whole alternative-search horizon.
func (uc *implUseCase) fetchWindow(intent intentWindow) (time.Time, time.Time) {
	from := SnapToWeekStart(intent.start)
	to := from.AddDate(0, 0, 7*(uc.lookahead+1))
	if intent.hasEnd {
		if vagueTo := SnapToWeekStart(intent.end).AddDate(0, 0, 7); vagueTo.After(to) {
			to = vagueTo
		}
	}
	return from, to
}

type intentWindow struct {
	start  time.Time
	end    time.Time
	hasEnd bool
}
