package dates

import (
	"fmt"
	"time"
)

// ISODate is the wire format for date query parameters and bodies.
const ISODate = "2006-01-02"

// Window is an inclusive [Start, End] day-granularity interval.
// Every "same day" comparison in the system goes through a Window; timestamps
// are never compared for equality.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayOf returns the window covering the calendar day that t falls in,
// in t's location: [00:00:00.000, 23:59:59.999999999].
func DayOf(t time.Time) Window {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return Window{Start: start, End: end}
}

// Range returns an inclusive window from the start of the from-day to the end
// of the to-day.
func Range(from, to time.Time) Window {
	return Window{Start: DayOf(from).Start, End: DayOf(to).End}
}

// Contains reports whether t falls inside the window (inclusive bounds).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ParseISO parses a YYYY-MM-DD date string in the given location.
// A nil location means time.Local.
func ParseISO(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(ISODate, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
