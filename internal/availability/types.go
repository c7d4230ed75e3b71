package availability

import "rental-availability/internal/model"

// ResolveInput is the inbound query. Query carries free text; the remaining
// fields are the structured fallback for legacy callers and are only
// consulted when Query is empty.
type ResolveInput struct {
	Query     string
	Date      string // ISO date, single-week lookup
	StartDate string // ISO date, with EndDate
	EndDate   string
	Vague     bool // with StartDate/EndDate: any week in the window will do
}

// ResolveOutput is the structured availability answer.
type ResolveOutput struct {
	Mode    string // single, range, vagueRange or invalid
	Query   string // echo of the interpreted query
	Matched bool   // the exact requested week (or window) had availability

	Week        *model.Week  // resolved week for single/range modes
	Alternative *model.Week  // nearest fallback when the requested week is taken
	Weeks       []model.Week // chronological matches for vagueRange mode

	Message string // human-readable outcome
}
