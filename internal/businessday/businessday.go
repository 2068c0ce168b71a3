// Package businessday maps instants to calendar dates under the fixed UTC+5:30
// business-day convention used by reports and history filters.
package businessday

import (
	"errors"
	"regexp"
	"time"
)

// Offset is the fixed business-day offset from UTC. It is not derived from the
// host or client timezone.
const Offset = 5*time.Hour + 30*time.Minute

// Layout is the only accepted date format.
const Layout = "2006-01-02"

// ErrInvalidDate is returned for anything that is not a literal YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Day is a validated business date.
type Day struct {
	date time.Time
}

// Parse validates s and returns the business date it names.
func Parse(s string) (Day, error) {
	if !datePattern.MatchString(s) {
		return Day{}, ErrInvalidDate
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Day{}, ErrInvalidDate
	}
	return Day{date: t}, nil
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return d.date.Format(Layout)
}

// Start is the first UTC instant belonging to the day.
func (d Day) Start() time.Time {
	return d.date.Add(-Offset)
}

// End is the first UTC instant after the day.
func (d Day) End() time.Time {
	return d.Start().Add(24 * time.Hour)
}

// Contains reports whether t falls on the day.
func (d Day) Contains(t time.Time) bool {
	return !t.Before(d.Start()) && t.Before(d.End())
}

// DateOf returns the business date t falls on.
func DateOf(t time.Time) string {
	return t.UTC().Add(Offset).Format(Layout)
}
