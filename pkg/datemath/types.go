package datemath

import (
	"errors"
	"time"
)

// ErrNoDate is returned when a phrase contains nothing date-like.
var ErrNoDate = errors.New("no date found in text")

// Extraction holds the dates pulled out of a free-text phrase.
type Extraction struct {
	Start        time.Time
	End          time.Time // zero unless HasEnd
	HasEnd       bool
	MonthOnly    bool // the phrase named a month with no day
	ExplicitYear bool // a 4-digit year appeared in the text
}
