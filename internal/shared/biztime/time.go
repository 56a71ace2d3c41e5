// Package biztime provides utilities for business timezone calculations.
// Calendar dates shown to users (dates of birth, enrolment dates, invoice
// dates) are read in the business timezone, never in the implicit Local
// timezone of the host.
//
// Design principles:
// - Date-only strings mean midnight in the business timezone
// - Timestamps with an explicit offset are converted into the business timezone
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Africa/Johannesburg"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// dateLayouts are tried in order by ParseDateIn. Layouts without a zone are
// interpreted in the target location.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01",
	"2006",
}

// Init initializes the business timezone. If tz is empty, defaults to
// Africa/Johannesburg.
//
// The timezone is fixed for the life of the process: once set, calling Init
// again with the same zone (or an empty one) is a no-op, and asking for a
// different zone returns an error.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		name := tz
		if name == "" {
			name = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(name)
	})
	if initErr != nil {
		return initErr
	}
	if tz != "" && tz != bizLocation.String() {
		return fmt.Errorf("business timezone already set to %q, cannot switch to %q", bizLocation, tz)
	}
	return nil
}

// Location returns the business timezone location.
// If not explicitly initialized, automatically initializes with the default timezone.
func Location() *time.Location {
	if err := Init(""); err != nil {
		panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
	}
	return bizLocation
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// StartOfDay returns midnight of t's calendar day in t's own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a date value in the business timezone.
func ParseDate(s string) (time.Time, error) {
	return ParseDateIn(s, Location())
}

// ParseDateIn parses an ISO-style date or timestamp. Values without an offset
// are read as wall time in loc; values with one are converted into loc.
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = Location()
	}
	value := strings.TrimSpace(s)
	if value == "" {
		return time.Time{}, fmt.Errorf("invalid date format %q: empty value", s)
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format %q", s)
}

// FormatInBizTimezone formats a time as a string in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
