// Package dates resolves free-form date expressions ("in two weeks",
// "next friday", ISO dates) to calendar dates relative to a reference day.
//
// Resolution runs an ordered list of pattern strategies; the first match
// wins. Absence of a result is the error signal: Resolve never fails loudly
// on malformed input.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// strategy attempts to resolve text against the reference day.
type strategy func(text string, today time.Time) (time.Time, bool)

// strategies in precedence order. The ordering is load-bearing: literal
// keywords shadow relative phrases, which shadow the fuzzy fallback.
var strategies = []strategy{
	resolveKeyword,
	resolveRelativeFuture,
	resolveRelativePast,
	resolveNextWeekday,
	resolveFallback,
}

const countAlt = `(\d+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)`

var (
	todayPattern     = regexp.MustCompile(`\btoday\b`)
	anchoredToday    = regexp.MustCompile(`\b(?:from|before)\s+today\b`)
	tomorrowPattern  = regexp.MustCompile(`\btomorrow\b`)
	yesterdayPattern = regexp.MustCompile(`\byesterday\b`)

	inDaysPattern       = regexp.MustCompile(`\bin\s+` + countAlt + `\s+days?\b`)
	daysFromNowPattern  = regexp.MustCompile(`\b` + countAlt + `\s+days?\s+from\s+(?:now|today)\b`)
	daysAgoPattern      = regexp.MustCompile(`\b` + countAlt + `\s+days?\s+ago\b`)
	daysBeforePattern   = regexp.MustCompile(`\b` + countAlt + `\s+days?\s+before\s+today\b`)
	nextWeekdayPattern  = regexp.MustCompile(`\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	isoDatePattern      = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	explicitYearPattern = regexp.MustCompile(`\b\d{4}\b`)

	monthDayPattern = regexp.MustCompile(`\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	dayMonthPattern = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b(?:\.?,?\s+(\d{4}))?`)
)

var countWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

var weekdayByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var monthByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Resolve maps a free-form date expression to a calendar date relative to
// today. The returned date is truncated to midnight UTC. ok is false when no
// strategy matched.
func Resolve(text string, today time.Time) (time.Time, bool) {
	if strings.TrimSpace(text) == "" {
		return time.Time{}, false
	}
	ref := Midnight(today)
	lower := strings.ToLower(text)
	for _, s := range strategies {
		if d, ok := s(lower, ref); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

// Midnight truncates a timestamp to its UTC calendar date.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func resolveKeyword(text string, today time.Time) (time.Time, bool) {
	// "2 days from today" must reach the relative strategies, so an
	// anchored "from today"/"before today" does not count as the keyword.
	if todayPattern.MatchString(text) && !anchoredToday.MatchString(text) {
		return today, true
	}
	if tomorrowPattern.MatchString(text) {
		return today.AddDate(0, 0, 1), true
	}
	if yesterdayPattern.MatchString(text) {
		return today.AddDate(0, 0, -1), true
	}
	return time.Time{}, false
}

func resolveRelativeFuture(text string, today time.Time) (time.Time, bool) {
	for _, p := range []*regexp.Regexp{inDaysPattern, daysFromNowPattern} {
		if m := p.FindStringSubmatch(text); m != nil {
			return today.AddDate(0, 0, parseCount(m[1])), true
		}
	}
	return time.Time{}, false
}

func resolveRelativePast(text string, today time.Time) (time.Time, bool) {
	for _, p := range []*regexp.Regexp{daysAgoPattern, daysBeforePattern} {
		if m := p.FindStringSubmatch(text); m != nil {
			return today.AddDate(0, 0, -parseCount(m[1])), true
		}
	}
	return time.Time{}, false
}

func resolveNextWeekday(text string, today time.Time) (time.Time, bool) {
	m := nextWeekdayPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	target := weekdayByName[m[1]]
	ahead := (int(target) - int(today.Weekday()) + 7) % 7
	if ahead == 0 {
		// "next friday" on a Friday means a week out, never today.
		ahead = 7
	}
	return today.AddDate(0, 0, ahead), true
}

// resolveFallback is the general fuzzy parse: explicit ISO dates, then
// month-name extraction, then a natural-language pass. Dates written without
// a year are assumed to mean the upcoming occurrence.
func resolveFallback(text string, today time.Time) (time.Time, bool) {
	d, ok := extractISODate(text)
	if !ok {
		d, ok = extractMonthDay(text, today)
	}
	if !ok {
		d, ok = parseNatural(text, today)
	}
	if !ok {
		return time.Time{}, false
	}
	if !explicitYearPattern.MatchString(text) && d.Before(today) {
		d = d.AddDate(1, 0, 0)
	}
	return d, true
}

func extractISODate(text string) (time.Time, bool) {
	m := isoDatePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation("2006-01-02", m[0], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func parseNatural(text string, today time.Time) (time.Time, bool) {
	d, err := naturaldate.Parse(text, today, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, false
	}
	d = Midnight(d)
	if d.Equal(today) {
		// The parser falls back to the reference time when the text holds
		// no usable expression; "today" itself was already handled.
		return time.Time{}, false
	}
	return d, true
}

func extractMonthDay(text string, today time.Time) (time.Time, bool) {
	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		return buildMonthDay(m[1], m[2], m[3], today)
	}
	if m := dayMonthPattern.FindStringSubmatch(text); m != nil {
		return buildMonthDay(m[2], m[1], m[3], today)
	}
	return time.Time{}, false
}

func buildMonthDay(monthStr, dayStr, yearStr string, today time.Time) (time.Time, bool) {
	month, ok := monthByPrefix[monthStr[:3]]
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	year := today.Year()
	if yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			return time.Time{}, false
		}
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// Reject overflowed days such as February 31.
	if d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

func parseCount(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return countWords[s]
}
