package interpret

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"rental-availability/pkg/datemath"
)

// Interpreter classifies free-text date queries into a small closed set of
// intents. Recognizers run in a fixed priority order and the first match
// wins; the ordering is a contract (season and holiday checks pre-empt the
// general date parse), not an implementation detail.
type Interpreter struct {
	dates *datemath.Parser
}

// New creates an Interpreter backed by the given date parser.
func New(dates *datemath.Parser) *Interpreter {
	return &Interpreter{dates: dates}
}

type recognizer func(text string, now time.Time) (Intent, bool)

// Interpret runs the recognizer cascade over the query text. It never fails:
// text no recognizer understands yields an Invalid intent.
func (i *Interpreter) Interpret(text string, now time.Time) Intent {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return Intent{Kind: KindInvalid}
	}

	cascade := []recognizer{
		i.recognizeWeekend,
		i.recognizeSeason,
		i.recognizeHoliday,
		i.recognizeGeneral,
	}
	for _, recognize := range cascade {
		if intent, ok := recognize(t, now); ok {
			return intent
		}
	}

	return Intent{Kind: KindInvalid}
}

// --- Recognizer 1: weekend phrases ---

// recognizeWeekend handles "weekend", "this weekend", "next weekend" and
// "weekend of <date>", resolving each to the Saturday of the relevant week.
func (i *Interpreter) recognizeWeekend(t string, now time.Time) (Intent, bool) {
	if !strings.Contains(t, "weekend") {
		return Intent{}, false
	}

	if idx := strings.Index(t, "weekend of"); idx >= 0 {
		rest := t[idx+len("weekend of"):]
		ext, err := i.dates.Extract(rest, now)
		if err != nil {
			return Intent{}, false
		}
		return Intent{Kind: KindSingle, Start: saturdayOf(ext.Start)}, true
	}

	upcoming := upcomingSaturday(i.dates.StartOfDay(now))
	if strings.Contains(t, "next weekend") {
		upcoming = upcoming.AddDate(0, 0, 7)
	}
	return Intent{Kind: KindSingle, Start: upcoming}, true
}

// saturdayOf maps a date to the Saturday starting its Sat-Sat week.
func saturdayOf(d time.Time) time.Time {
	back := (int(d.Weekday()) + 1) % 7
	return d.AddDate(0, 0, -back)
}

// upcomingSaturday is the next Saturday on or after d.
func upcomingSaturday(d time.Time) time.Time {
	ahead := (int(time.Saturday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, ahead)
}

// --- Recognizer 2: named seasons ---

// Meteorological season windows, half-open over month starts. Winter spans
// the year boundary.
var seasons = []struct {
	name       string
	startMonth time.Month
	endMonth   time.Month
	wraps      bool
}{
	{"spring", time.March, time.June, false},
	{"summer", time.June, time.September, false},
	{"autumn", time.September, time.December, false},
	{"fall", time.September, time.December, false},
	{"winter", time.December, time.March, true},
}

var reYear = regexp.MustCompile(`\b(\d{4})\b`)

func (i *Interpreter) recognizeSeason(t string, now time.Time) (Intent, bool) {
	for _, s := range seasons {
		if !containsWord(t, s.name) {
			continue
		}

		loc := i.dates.Location()
		window := func(year int) (time.Time, time.Time) {
			start := time.Date(year, s.startMonth, 1, 0, 0, 0, 0, loc)
			endYear := year
			if s.wraps {
				endYear++
			}
			return start, time.Date(endYear, s.endMonth, 1, 0, 0, 0, 0, loc)
		}

		year, explicit := yearIn(t, now.Year())
		start, end := window(year)
		if !explicit {
			// Current-or-next occurrence: the first window with any of it
			// still ahead. Wrapping seasons may have started last year.
			for _, y := range []int{year - 1, year, year + 1} {
				start, end = window(y)
				if end.After(now) {
					year = y
					break
				}
			}
			// "next <season>" skips an occurrence already under way.
			if strings.Contains(t, "next "+s.name) && !start.After(now) {
				start, end = window(year + 1)
			}
		}

		name := s.name
		if name == "fall" {
			name = "autumn"
		}
		return Intent{Kind: KindVagueRange, Start: start, End: end, Label: LabelSeason, Term: name}, true
	}
	return Intent{}, false
}

func containsWord(t, word string) bool {
	idx := 0
	for {
		rel := strings.Index(t[idx:], word)
		if rel < 0 {
			return false
		}
		pos := idx + rel
		beforeOK := pos == 0 || !isLetter(t[pos-1])
		afterPos := pos + len(word)
		afterOK := afterPos == len(t) || !isLetter(t[afterPos])
		if beforeOK && afterOK {
			return true
		}
		idx = pos + 1
	}
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// yearIn pulls an explicit 4-digit year out of the text, else returns the
// fallback with explicit=false.
func yearIn(t string, fallback int) (int, bool) {
	if m := reYear.FindStringSubmatch(t); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil && y >= 1900 && y <= 2200 {
			return y, true
		}
	}
	return fallback, false
}

// --- Recognizer 3: named holidays ---

// Holiday windows are fixed approximate calendar spans. Easter moves between
// late March and late April, so its window covers that whole stretch.
var holidays = []struct {
	name                 string
	aliases              []string
	startMonth, startDay int
	endMonth, endDay     int
	wraps                bool
}{
	{"easter", []string{"easter"}, 3, 20, 4, 24, false},
	{"christmas", []string{"christmas", "xmas"}, 12, 20, 1, 3, true},
}

func (i *Interpreter) recognizeHoliday(t string, now time.Time) (Intent, bool) {
	for _, h := range holidays {
		matched := false
		for _, alias := range h.aliases {
			if containsWord(t, alias) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		loc := i.dates.Location()
		window := func(year int) (time.Time, time.Time) {
			start := time.Date(year, time.Month(h.startMonth), h.startDay, 0, 0, 0, 0, loc)
			endYear := year
			if h.wraps {
				endYear++
			}
			return start, time.Date(endYear, time.Month(h.endMonth), h.endDay, 0, 0, 0, 0, loc)
		}

		year, explicit := yearIn(t, now.Year())
		start, end := window(year)
		if !explicit {
			for _, y := range []int{year - 1, year, year + 1} {
				start, end = window(y)
				if end.After(now) {
					break
				}
			}
		}

		return Intent{Kind: KindVagueRange, Start: start, End: end, Label: LabelHoliday, Term: h.name}, true
	}
	return Intent{}, false
}

// --- Recognizer 4: general natural-language date parse ---

var vagueMonthMarkers = []string{"anything in", "sometime", "throughout"}
var vagueWeekMarkers = []string{"next week", "that week", "for a week", "week in"}

func (i *Interpreter) recognizeGeneral(t string, now time.Time) (Intent, bool) {
	ext, err := i.dates.Extract(t, now)
	if err != nil {
		return Intent{}, false
	}

	if ext.HasEnd {
		return Intent{Kind: KindExactRange, Start: ext.Start, End: ext.End}, true
	}

	if ext.MonthOnly || hasVagueMonthMarker(t) {
		first := time.Date(ext.Start.Year(), ext.Start.Month(), 1, 0, 0, 0, 0, ext.Start.Location())
		return Intent{
			Kind:  KindVagueRange,
			Start: first,
			End:   first.AddDate(0, 1, 0),
			Label: LabelMonth,
		}, true
	}

	if hasVagueWeekMarker(t) {
		return Intent{
			Kind:  KindVagueRange,
			Start: ext.Start,
			End:   ext.Start.AddDate(0, 0, 7),
			Label: LabelWeek,
		}, true
	}

	return Intent{Kind: KindSingle, Start: ext.Start}, true
}

func hasVagueMonthMarker(t string) bool {
	for _, marker := range vagueMonthMarkers {
		if strings.Contains(t, marker) {
			return true
		}
	}
	// A bare "any": word-bounded so "January" does not trip it.
	return containsWord(t, "any")
}

func hasVagueWeekMarker(t string) bool {
	for _, marker := range vagueWeekMarkers {
		if strings.Contains(t, marker) {
			return true
		}
	}
	return false
}
