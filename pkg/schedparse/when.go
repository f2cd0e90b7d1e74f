package schedparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver extracts a calendar date and time-of-day from free-form text,
// relative to an explicit reference instant. It holds no state and is safe
// for concurrent use.
type Resolver struct{}

// NewResolver creates a new date/time resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// civilDate is the running date under construction during resolution.
type civilDate struct {
	year  int
	month time.Month
	day   int
}

// dateDetector recognizes one date-token shape and rewrites the running date.
//
// Detectors run unconditionally in a fixed order (relative-day, ISO, weekday,
// day-month) and a later match overwrites whatever an earlier one set. This is
// a deliberate simplicity trade-off carried over from the override model: the
// order IS the priority, there is no confidence or longest-match merging.
type dateDetector struct {
	name  string
	re    *regexp.Regexp
	apply func(m []string, d civilDate, now time.Time) civilDate
}

var (
	reTomorrow = regexp.MustCompile(`(?i)tomorrow`)
	reToday    = regexp.MustCompile(`(?i)today`)
	reISODate  = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	reWeekday  = regexp.MustCompile(`(?i)(next\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	reDayMonth = regexp.MustCompile(`(?i)(\d{1,2})\s+(sept|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`)

	reTime12  = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	reTime24  = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	reMorning = regexp.MustCompile(`(?i)morning`)
	reNoon    = regexp.MustCompile(`(?i)afternoon`)
	reEvening = regexp.MustCompile(`(?i)evening`)
)

var weekdayIndex = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// monthIndex maps month abbreviations to calendar months. "sep" and "sept"
// are both accepted spellings of September.
var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"sept": time.September, "oct": time.October, "nov": time.November,
	"dec": time.December,
}

var dateDetectors = []dateDetector{
	{
		name: "tomorrow",
		re:   reTomorrow,
		apply: func(_ []string, d civilDate, now time.Time) civilDate {
			return addDays(d, 1, now.Location())
		},
	},
	{
		name: "today",
		re:   reToday,
		apply: func(_ []string, d civilDate, _ time.Time) civilDate {
			// Marks the date as explicitly set without changing it.
			return d
		},
	},
	{
		name: "iso-date",
		re:   reISODate,
		apply: func(m []string, _ civilDate, _ time.Time) civilDate {
			year, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			return civilDate{year: year, month: time.Month(month), day: day}
		},
	},
	{
		name: "weekday",
		re:   reWeekday,
		apply: func(m []string, d civilDate, now time.Time) civilDate {
			forceNext := strings.TrimSpace(m[1]) != ""
			target := weekdayIndex[strings.ToLower(m[2])]
			current := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, now.Location()).Weekday()
			diff := (int(target) + 7 - int(current)) % 7
			// "next monday" said on a Monday means a week out, not today.
			if forceNext && diff == 0 {
				diff = 7
			}
			return addDays(d, diff, now.Location())
		},
	},
	{
		name: "day-month",
		re:   reDayMonth,
		apply: func(m []string, _ civilDate, now time.Time) civilDate {
			day, _ := strconv.Atoi(m[1])
			return civilDate{year: now.Year(), month: monthIndex[strings.ToLower(m[2])], day: day}
		},
	},
}

// Resolve constructs the instant a piece of free text refers to, using now as
// the reference point. It returns ErrUnresolvedTime when the constructed date
// is not a valid calendar date; invalid dates such as "31 feb" are rejected,
// never normalized.
func (r *Resolver) Resolve(text string, now time.Time) (time.Time, error) {
	d := civilDate{year: now.Year(), month: now.Month(), day: now.Day()}
	explicitDate := false

	for _, det := range dateDetectors {
		m := det.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		d = det.apply(m, d, now)
		explicitDate = true
	}

	hour, minute := resolveClock(text)

	resolved := time.Date(d.year, d.month, d.day, hour, minute, 0, 0, now.Location())
	if resolved.Year() != d.year || resolved.Month() != d.month || resolved.Day() != d.day {
		return time.Time{}, ErrUnresolvedTime
	}

	// "at 3pm" said after 3pm means tomorrow, unless a date token pinned the day.
	if !explicitDate && resolved.Before(now) {
		resolved = resolved.AddDate(0, 0, 1)
	}

	return resolved, nil
}

// resolveClock extracts the time-of-day, independent of any date token.
// A 12-hour form wins over a 24-hour form, which wins over day-part words;
// with none of them the day starts at 09:00.
func resolveClock(text string) (hour, minute int) {
	if m := reTime12.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		hour = h % 12
		if strings.EqualFold(m[3], "pm") {
			hour += 12
		}
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		return hour, minute
	}
	if m := reTime24.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		return hour, minute
	}
	switch {
	case reMorning.MatchString(text):
		return 9, 0
	case reNoon.MatchString(text):
		return 14, 0
	case reEvening.MatchString(text):
		return 18, 0
	}
	return 9, 0
}

// addDays shifts a civil date by n days. The base date is assumed valid.
func addDays(d civilDate, n int, loc *time.Location) civilDate {
	t := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc).AddDate(0, 0, n)
	return civilDate{year: t.Year(), month: t.Month(), day: t.Day()}
}
