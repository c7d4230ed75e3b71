package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rental-availability/internal/interpret"
	"rental-availability/internal/model"
)

// userDateFormat is the user-facing form, e.g. "Sat, 27 Jun 2026".
const userDateFormat = "Mon, 02 Jan 2006"

const invalidGuidance = `Sorry, I couldn't work out which dates you mean. ` +
	`Try something like "4 July 2026", "10-17 Aug" or "anything in July".`

func fmtDate(d time.Time) string {
	return d.Format(userDateFormat)
}

func (uc *implUseCase) fmtPrice(p *float64) string {
	if p == nil {
		return "price on request"
	}
	s := strconv.FormatFloat(*p, 'f', -1, 64)
	if cur := uc.prices.Currency(); cur != "" {
		return s + " " + cur
	}
	return s
}

// composeSingle phrases the outcome of a single-date lookup. exact means the
// found week is the one the user asked about.
func (uc *implUseCase) composeSingle(requested time.Time, week *model.Week, exact bool) string {
	switch {
	case week == nil:
		return fmt.Sprintf("No available weeks within the next %d weeks of %s. Please get in touch for later dates.",
			uc.lookahead, fmtDate(SnapToWeekStart(requested)))
	case exact:
		return fmt.Sprintf("Good news: the week of %s is available at %s.",
			fmtDate(week.Start), uc.fmtPrice(week.Price))
	default:
		return fmt.Sprintf("The week of %s is taken. The nearest available week starts %s at %s.",
			fmtDate(SnapToWeekStart(requested)), fmtDate(week.Start), uc.fmtPrice(week.Price))
	}
}

// composeRange phrases an exact-range outcome.
func (uc *implUseCase) composeRange(week model.Week, alternative *model.Week) string {
	if week.Available() {
		return fmt.Sprintf("The week of %s is available at %s.",
			fmtDate(week.Start), uc.fmtPrice(week.Price))
	}
	if alternative != nil {
		return fmt.Sprintf("The week of %s is not available. The nearest alternative starts %s at %s.",
			fmtDate(week.Start), fmtDate(alternative.Start), uc.fmtPrice(alternative.Price))
	}
	return fmt.Sprintf("The week of %s is not available, and nothing frees up in the following %d weeks.",
		fmtDate(week.Start), uc.lookahead)
}

// composeVague phrases a window search: none found, or a preview of the
// first few matches.
func (uc *implUseCase) composeVague(intent interpret.Intent, weeks []model.Week) string {
	window := describeWindow(intent)
	if len(weeks) == 0 {
		return fmt.Sprintf("No available weeks in %s. Please get in touch for other dates.", window)
	}

	preview := weeks
	if len(preview) > 3 {
		preview = preview[:3]
	}
	starts := make([]string, len(preview))
	for i, w := range preview {
		starts[i] = fmt.Sprintf("%s (%s)", fmtDate(w.Start), uc.fmtPrice(w.Price))
	}

	noun := "weeks"
	if len(weeks) == 1 {
		noun = "week"
	}
	return fmt.Sprintf("Found %d available %s in %s: %s.",
		len(weeks), noun, window, strings.Join(starts, ", "))
}

// describeWindow names a vague window for message phrasing, driven by the
// intent's label.
func describeWindow(intent interpret.Intent) string {
	switch intent.Label {
	case interpret.LabelMonth:
		return intent.Start.Format("January 2006")
	case interpret.LabelSeason, interpret.LabelHoliday:
		if intent.Term != "" {
			return fmt.Sprintf("%s %d", intent.Term, intent.Start.Year())
		}
	case interpret.LabelWeek:
		return fmt.Sprintf("the week of %s", fmtDate(intent.Start))
	}
	return fmt.Sprintf("%s to %s", fmtDate(intent.Start), fmtDate(intent.End))
}
