package interpret

import "time"

// Kind tags the shape of a query intent.
type Kind string

const (
	KindSingle     Kind = "single"     // one calendar date of interest
	KindExactRange Kind = "range"      // explicit half-open start/end
	KindVagueRange Kind = "vagueRange" // any available week in a window
	KindInvalid    Kind = "invalid"    // unparseable input
)

// Label carries the semantic category of a vague window, used for phrasing.
type Label string

const (
	LabelMonth   Label = "month"
	LabelSeason  Label = "season"
	LabelHoliday Label = "holiday"
	LabelWeek    Label = "week"
)

// Intent is the typed result of interpreting one free-text query. Constructed
// fresh per request, consumed once by the resolver, then discarded.
type Intent struct {
	Kind  Kind
	Start time.Time
	End   time.Time // set for range and vagueRange kinds
	Label Label     // set for vagueRange kinds
	Term  string    // the matched season/holiday keyword, for phrasing
}
