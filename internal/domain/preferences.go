package domain

import (
	"strings"
	"time"
)

// DefaultDailyMaxHours is the ceiling on total study hours per day when the
// user has not configured one.
const DefaultDailyMaxHours = 3.0

// Weekdays lists the lowercase weekday names accepted in DaysOff.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

var weekdaySet = func() map[string]bool {
	s := make(map[string]bool, len(Weekdays))
	for _, d := range Weekdays {
		s[d] = true
	}
	return s
}()

// Preferences holds the global scheduling preferences: the daily hour cap,
// weekdays on which nothing may be scheduled, and an optional start date.
type Preferences struct {
	DailyMaxHours float64
	DaysOff       []string
	StartDate     *time.Time
}

// DefaultPreferences returns the preferences applied to a fresh session.
func DefaultPreferences() Preferences {
	return Preferences{DailyMaxHours: DefaultDailyMaxHours}
}

// NormalizeDaysOff lowercases and trims weekday names, drops empties and
// duplicates, and rejects anything that is not one of the seven weekdays.
func NormalizeDaysOff(days []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, d := range days {
		name := strings.ToLower(strings.TrimSpace(d))
		if name == "" {
			continue
		}
		if !weekdaySet[name] {
			return nil, ValidationErrorf("unknown weekday %q in days off", d)
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out, nil
}

// WeekdayName returns the lowercase name of a date's weekday.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// DayOffSet returns the days off as a lookup set.
func (p Preferences) DayOffSet() map[string]bool {
	s := make(map[string]bool, len(p.DaysOff))
	for _, d := range p.DaysOff {
		s[d] = true
	}
	return s
}

// IsDayOff reports whether the date falls on a configured day off.
func (p Preferences) IsDayOff(t time.Time) bool {
	name := WeekdayName(t)
	for _, d := range p.DaysOff {
		if d == name {
			return true
		}
	}
	return false
}
