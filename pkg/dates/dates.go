// Package dates provides calendar-date helpers for the inspection pipeline.
// All dates are pure calendar dates: UTC midnight with no time component.
package dates

import (
	"strings"
	"time"
)

// Accepted input layouts, tried in order. Timestamps are truncated to the
// calendar date after parsing.
var layouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
}

// Parse coerces a raw cell value to a calendar date. The second return is
// false when the value is empty or matches none of the accepted layouts.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Truncate(t), true
		}
	}

	return time.Time{}, false
}

// Truncate drops the time component, keeping the calendar date at UTC midnight.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// YearMonth formats t as "YYYY-MM".
func YearMonth(t time.Time) string {
	return t.Format("2006-01")
}

// DaysBetween returns the number of whole days from start to end.
// Negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(Truncate(end).Sub(Truncate(start)).Hours() / 24)
}

// InRange reports whether t falls within [start, end], bounds inclusive.
func InRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// MustParse parses a YYYY-MM-DD date or panics. Intended for fixtures and
// configuration defaults where the literal is known good.
func MustParse(s string) time.Time {
	t, ok := Parse(s)
	if !ok {
		panic("dates: unparseable date: " + s)
	}

	return t
}
