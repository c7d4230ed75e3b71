package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-availability/internal/availability"
	"rental-availability/internal/interpret"
	"rental-availability/internal/model"
)

// Resolve interprets the query and answers it against the calendar feed and
// the price table. Interpretation failure and exhausted searches are
// successful outcomes; only collaborator failures return an error.
func (uc *implUseCase) Resolve(ctx context.Context, input availability.ResolveInput) (availability.ResolveOutput, error) {
	var intent interpret.Intent

	query := strings.TrimSpace(input.Query)
	if query != "" {
		intent = uc.interpreter.Interpret(query, uc.now())
	} else {
		intent, query = legacyIntent(input)
		if query == "" {
			return availability.ResolveOutput{}, availability.ErrEmptyQuery
		}
	}

	if intent.Kind == interpret.KindInvalid {
		return availability.ResolveOutput{
			Mode:    string(interpret.KindInvalid),
			Query:   query,
			Message: invalidGuidance,
		}, nil
	}

	from, to := uc.fetchWindow(intentWindow{
		start:  intent.Start,
		end:    intent.End,
		hasEnd: intent.Kind != interpret.KindSingle,
	})
	intervals, err := uc.calendar.BusyIntervals(ctx, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.BusyIntervals(%s, %s): %v", from.Format("2006-01-02"), to.Format("2006-01-02"), err)
		return availability.ResolveOutput{}, fmt.Errorf("%w: %v", availability.ErrCalendarUnavailable, err)
	}

	out := availability.ResolveOutput{
		Mode:  string(intent.Kind),
		Query: query,
	}

	switch intent.Kind {
	case interpret.KindSingle:
		uc.resolveSingle(intent, intervals, &out)
	case interpret.KindExactRange:
		uc.resolveRange(intent, intervals, &out)
	case interpret.KindVagueRange:
		uc.resolveVague(intent, intervals, &out)
	}

	return out, nil
}

func (uc *implUseCase) resolveSingle(intent interpret.Intent, intervals []model.BookedInterval, out *availability.ResolveOutput) {
	requested := SnapToWeekStart(intent.Start)
	week := uc.nextAvailableWeek(intent.Start, intervals)

	out.Week = week
	out.Matched = week != nil && week.Start.Equal(requested)
	out.Message = uc.composeSingle(intent.Start, week, out.Matched)
}

func (uc *implUseCase) resolveRange(intent interpret.Intent, intervals []model.BookedInterval, out *availability.ResolveOutput) {
	week := uc.weekInfo(SnapToWeekStart(intent.Start), intervals)
	out.Week = &week

	if week.Available() {
		out.Matched = true
		out.Message = uc.composeRange(week, nil)
		return
	}

	// Requested week is taken (or unpriced): fall back to the nearest one.
	out.Alternative = uc.nextAvailableWeek(intent.Start, intervals)
	out.Message = uc.composeRange(week, out.Alternative)
}

func (uc *implUseCase) resolveVague(intent interpret.Intent, intervals []model.BookedInterval, out *availability.ResolveOutput) {
	weeks := uc.availableWeeksBetween(intent.Start, intent.End, intervals)
	out.Weeks = weeks
	out.Matched = len(weeks) > 0
	out.Message = uc.composeVague(intent, weeks)
}

// legacyIntent builds an intent from the structured fallback payload. Dates
// are ISO; anything malformed degrades to an invalid intent, the same
// successful-but-unresolvable outcome free text gets.
func legacyIntent(input availability.ResolveInput) (interpret.Intent, string) {
	parse := func(s string) (time.Time, bool) {
		d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		return d, err == nil
	}

	switch {
	case input.Date != "":
		if d, ok := parse(input.Date); ok {
			return interpret.Intent{Kind: interpret.KindSingle, Start: d}, input.Date
		}
		return interpret.Intent{Kind: interpret.KindInvalid}, input.Date

	case input.StartDate != "" && input.EndDate != "":
		query := input.StartDate + " to " + input.EndDate
		start, okS := parse(input.StartDate)
		end, okE := parse(input.EndDate)
		if !okS || !okE || !end.After(start) {
			return interpret.Intent{Kind: interpret.KindInvalid}, query
		}
		if input.Vague {
			return interpret.Intent{Kind: interpret.KindVagueRange, Start: start, End: end}, query
		}
		return interpret.Intent{Kind: interpret.KindExactRange, Start: start, End: end}, query
	}

	return interpret.Intent{}, ""
}
