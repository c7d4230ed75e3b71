package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts date phrases in free text to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/London"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

const monthPattern = `(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)`

var (
	reISO           = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reDayRangeMonth = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s*(?:-|–|—|to|until|till)\s*(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthPattern + `\b\.?,?\s*(\d{4})?`)
	reMonthDayRange = regexp.MustCompile(`\b` + monthPattern + `\b\.?\s+(\d{1,2})(?:st|nd|rd|th)?\s*(?:-|–|—|to)\s*(\d{1,2})(?:st|nd|rd|th)?\b,?\s*(\d{4})?`)
	reDayMonth      = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthPattern + `\b\.?,?\s*(\d{4})?`)
	reMonthDay      = regexp.MustCompile(`\b` + monthPattern + `\b\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s*(\d{4}))?`)
	reMonthOnly     = regexp.MustCompile(`\b` + monthPattern + `\b\.?,?\s*(\d{4})?`)
	reInDuration    = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func monthFromName(name string) time.Month {
	switch name[:3] {
	case "jan":
		return time.January
	case "feb":
		return time.February
	case "mar":
		return time.March
	case "apr":
		return time.April
	case "may":
		return time.May
	case "jun":
		return time.June
	case "jul":
		return time.July
	case "aug":
		return time.August
	case "sep":
		return time.September
	case "oct":
		return time.October
	case "nov":
		return time.November
	}
	return time.December
}

// Extract pulls a date, or a start/end pair, out of a free-text phrase.
// baseTime is the reference clock: phrases without an explicit year resolve
// to their next occurrence on or after it; a 4-digit year in the text wins.
func (p *Parser) Extract(text string, baseTime time.Time) (Extraction, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return Extraction{}, ErrNoDate
	}

	// "10-17 aug 2026" / "10 to 17 august"
	if m := reDayRangeMonth.FindStringSubmatch(t); m != nil {
		if ext, err := p.dayRange(m[1], m[2], m[3], m[4], baseTime); err == nil {
			return ext, nil
		}
	}
	// "aug 10-17"
	if m := reMonthDayRange.FindStringSubmatch(t); m != nil {
		if ext, err := p.dayRange(m[2], m[3], m[1], m[4], baseTime); err == nil {
			return ext, nil
		}
	}

	// Explicit ISO dates; two of them make a range.
	if dates := p.isoDates(t); len(dates) > 0 {
		return pair(dates, true), nil
	}

	// "4 july 2026", "july 4", "from 4 july to 11 july"
	if set := p.namedDates(t, baseTime); len(set.dates) > 0 {
		return pair(set.dates, set.explicitYear), nil
	}

	// Relative phrases.
	if d, ok := p.relative(t, baseTime); ok {
		return Extraction{Start: d}, nil
	}

	// A bare month name.
	if m := reMonthOnly.FindStringSubmatch(t); m != nil {
		month := monthFromName(m[1])
		year, explicit := p.monthYear(month, m[2], baseTime)
		return Extraction{
			Start:        time.Date(year, month, 1, 0, 0, 0, 0, p.location),
			MonthOnly:    true,
			ExplicitYear: explicit,
		}, nil
	}

	return Extraction{}, ErrNoDate
}

func pair(dates []time.Time, explicitYear bool) Extraction {
	ext := Extraction{Start: dates[0], ExplicitYear: explicitYear}
	if len(dates) > 1 && dates[1].After(dates[0]) {
		ext.End = dates[1]
		ext.HasEnd = true
	}
	return ext
}

func (p *Parser) dayRange(day1, day2, monthName, yearStr string, baseTime time.Time) (Extraction, error) {
	d1, _ := strconv.Atoi(day1)
	d2, _ := strconv.Atoi(day2)
	if d1 < 1 || d1 > 31 || d2 <= d1 || d2 > 31 {
		return Extraction{}, ErrNoDate
	}
	month := monthFromName(monthName)
	year, explicit := p.dayYear(month, d1, yearStr, baseTime)
	return Extraction{
		Start:        time.Date(year, month, d1, 0, 0, 0, 0, p.location),
		End:          time.Date(year, month, d2, 0, 0, 0, 0, p.location),
		HasEnd:       true,
		ExplicitYear: explicit,
	}, nil
}

func (p *Parser) isoDates(t string) []time.Time {
	var out []time.Time
	for _, m := range reISO.FindAllString(t, 2) {
		d, err := time.ParseInLocation("2006-01-02", m, p.location)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}

type namedDateSet struct {
	dates        []time.Time
	explicitYear bool
}

// namedDates finds day+month mentions in either order, in text position
// order, so "from 4 july to 11 july" yields a start and an end.
func (p *Parser) namedDates(t string, baseTime time.Time) namedDateSet {
	type hit struct {
		pos, end int
		day      int
		month    time.Month
		year     string
	}
	var hits []hit

	add := func(pos, end, day int, month time.Month, year string) {
		for _, h := range hits {
			if pos < h.end && h.pos < end {
				return // overlapping mention already captured
			}
		}
		hits = append(hits, hit{pos: pos, end: end, day: day, month: month, year: year})
	}

	for _, idx := range reDayMonth.FindAllStringSubmatchIndex(t, 2) {
		m := submatches(t, idx)
		day, _ := strconv.Atoi(m[1])
		add(idx[0], idx[1], day, monthFromName(m[2]), m[3])
	}
	for _, idx := range reMonthDay.FindAllStringSubmatchIndex(t, 2) {
		m := submatches(t, idx)
		day, _ := strconv.Atoi(m[2])
		add(idx[0], idx[1], day, monthFromName(m[1]), m[3])
	}

	// Insertion sort by position; at most a handful of hits.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	var set namedDateSet
	for _, h := range hits {
		if len(set.dates) == 2 {
			break
		}
		if h.day < 1 || h.day > 31 {
			continue
		}
		year, explicit := p.dayYear(h.month, h.day, h.year, baseTime)
		set.explicitYear = set.explicitYear || explicit
		set.dates = append(set.dates, time.Date(year, h.month, h.day, 0, 0, 0, 0, p.location))
	}
	return set
}

func submatches(t string, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := range out {
		if idx[2*i] >= 0 {
			out[i] = t[idx[2*i]:idx[2*i+1]]
		}
	}
	return out
}

// relative handles today/tomorrow, "next week", "next <weekday>" and
// "in N days/weeks/months".
func (p *Parser) relative(t string, baseTime time.Time) (time.Time, bool) {
	switch {
	case strings.Contains(t, "today"):
		return p.startOfDay(baseTime), true
	case strings.Contains(t, "tomorrow"):
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), true
	case strings.Contains(t, "next week"):
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), true
	}

	if m := reInDuration.FindStringSubmatch(t); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "day"):
			return p.startOfDay(baseTime.AddDate(0, 0, amount)), true
		case strings.HasPrefix(m[2], "week"):
			return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), true
		default:
			return p.startOfDay(baseTime.AddDate(0, amount, 0)), true
		}
	}

	for name, wd := range weekdays {
		if strings.Contains(t, "next "+name) {
			daysUntil := int(wd - baseTime.Weekday())
			if daysUntil <= 0 {
				daysUntil += 7
			}
			return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), true
		}
	}

	return time.Time{}, false
}

// dayYear resolves the year for a day-of-month mention: an explicit year
// wins, otherwise the next occurrence on or after baseTime.
func (p *Parser) dayYear(month time.Month, day int, yearStr string, baseTime time.Time) (int, bool) {
	if y, err := strconv.Atoi(yearStr); err == nil && y >= 1000 {
		return y, true
	}
	y := baseTime.Year()
	candidate := time.Date(y, month, day, 0, 0, 0, 0, p.location)
	if candidate.Before(p.startOfDay(baseTime)) {
		y++
	}
	return y, false
}

// monthYear is the month-granularity variant: this year's month while any of
// it is still ahead, else next year's.
func (p *Parser) monthYear(month time.Month, yearStr string, baseTime time.Time) (int, bool) {
	if y, err := strconv.Atoi(yearStr); err == nil && y >= 1000 {
		return y, true
	}
	y := baseTime.Year()
	firstOfNext := time.Date(y, month, 1, 0, 0, 0, 0, p.location).AddDate(0, 1, 0)
	if !firstOfNext.After(baseTime) {
		y++
	}
	return y, false
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// StartOfDay normalizes a time to midnight in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}
