package progress

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar day key in YYYY-MM-DD form. The zero Day ("") means
// "never". Day values are compared by calendar date only; time of day and
// time zone are resolved by whoever builds the Day.
type Day string

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// ParseDay parses a YYYY-MM-DD string. The empty string yields the zero Day.
func ParseDay(s string) (Day, error) {
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// IsZero reports whether d is unset.
func (d Day) IsZero() bool {
	return d == ""
}

// String returns the YYYY-MM-DD form.
func (d Day) String() string {
	return string(d)
}

// Time returns midnight UTC of d. ok is false for the zero or a malformed Day.
func (d Day) Time() (t time.Time, ok bool) {
	if d.IsZero() {
		return time.Time{}, false
	}
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	t, ok := d.Time()
	if !ok {
		return d
	}
	return DayOf(t.AddDate(0, 0, n))
}

// DaysBetween returns the number of calendar days from "from" to "to":
// 1 when to is the day after from, 0 for the same day, negative when to is
// earlier. ok is false if either day is zero or malformed.
func DaysBetween(from, to Day) (days int, ok bool) {
	a, okA := from.Time()
	b, okB := to.Time()
	if !okA || !okB {
		return 0, false
	}
	return int(b.Sub(a).Hours() / 24), true
}
