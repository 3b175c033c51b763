// Package datetime provides date parsing helpers for schedule start dates.
package datetime

import (
	"time"

	"github.com/Vilduis/SimulaCredit-sub000/pkg/constants"
)

// DateLayout is the format expected in config files and is also the output
// date format.
const DateLayout = constants.DateLayout

// MustParseTime parses a date string using the given layout and panics on
// error. This is intended for use in tests where the date string is known to
// be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseStartDate parses a schedule start date, defaulting to the current day
// when the date is unspecified.
func ParseStartDate(date string) (time.Time, error) {
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(DateLayout, date)
}
