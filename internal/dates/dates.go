// Package dates parses and validates the calendar dates attendance is
// logged for.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical YYYY-MM-DD format.
const Layout = "2006-01-02"

// Earliest is the first date attendance can be logged for.
var Earliest = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Format renders t as YYYY-MM-DD in t's location.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Truncate drops the time of day, keeping t's location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Validate rejects dates after today or before Earliest.
func Validate(d, now time.Time) error {
	day := Truncate(d)
	if day.After(Truncate(now)) {
		return fmt.Errorf("date %s is in the future", Format(day))
	}
	earliest := time.Date(Earliest.Year(), Earliest.Month(), Earliest.Day(), 0, 0, 0, 0, d.Location())
	if day.Before(earliest) {
		return fmt.Errorf("date %s is before %s", Format(day), Format(earliest))
	}
	return nil
}

// Parse parses a date expression relative to now. Weekday names resolve to
// the most recent such day since visits are logged after the fact.
// Supports: "today", "yesterday", "monday", "last monday", "on Monday",
// "2024-01-15", "Jan 2", "Jan 2 2006", "January 2", "January 2 2006",
// "2 Jan", "2 Jan 2006", "2 January", "2 January 2006".
func Parse(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	switch s {
	case "", "today":
		return Truncate(now), nil
	case "yesterday":
		return Truncate(now).AddDate(0, 0, -1), nil
	}

	if rest, ok := strings.CutPrefix(s, "last "); ok {
		if wd, ok := weekdays[rest]; ok {
			return previousWeekday(now, wd, false), nil
		}
	}
	if wd, ok := weekdays[s]; ok {
		return previousWeekday(now, wd, true), nil
	}

	layouts := []string{
		"2006-01-02",
		"Jan 2",
		"Jan 2 2006",
		"January 2",
		"January 2 2006",
		"2 Jan",
		"2 Jan 2006",
		"2 January",
		"2 January 2006",
	}

	// Month names match case-insensitively, so lowercased input still parses.
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			if !strings.Contains(layout, "2006") {
				return pastYear(t.Month(), t.Day(), now)
			}
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// pastYear places a year-less month and day in the most recent year where
// it is not after today. The day must exist in that year.
func pastYear(month time.Month, day int, now time.Time) (time.Time, error) {
	year := now.Year()
	if time.Date(year, month, day, 0, 0, 0, 0, now.Location()).After(Truncate(now)) {
		year--
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%s %d does not exist in %d", month, day, year)
	}
	return t, nil
}

// ParseMonth resolves --month (1-12) and --year values, defaulting to
// now's month and year.
func ParseMonth(monthStr, yearStr string, now time.Time) (int, time.Month, error) {
	year := now.Year()
	if yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y <= 0 {
			return 0, 0, fmt.Errorf("invalid --year value %q (expected a positive number)", yearStr)
		}
		year = y
	}

	month := now.Month()
	if monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid --month value %q (expected 1-12)", monthStr)
		}
		month = time.Month(m)
	}

	return year, month, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// previousWeekday returns the latest wd on or before now. When includeToday
// is false and now is wd, the week before is returned.
func previousWeekday(now time.Time, wd time.Weekday, includeToday bool) time.Time {
	today := Truncate(now)
	daysBack := int(today.Weekday()) - int(wd)
	if daysBack < 0 || (daysBack == 0 && !includeToday) {
		daysBack += 7
	}
	return today.AddDate(0, 0, -daysBack)
}
