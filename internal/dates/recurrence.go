package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

var everyNDays = regexp.MustCompile(`^every (\d+) days?$`)

// ParseRecurrence parses a natural language or raw RRULE visit pattern.
func ParseRecurrence(s string) (*rrule.RRule, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.HasPrefix(s, "rrule:") || strings.HasPrefix(s, "freq=") {
		raw := strings.TrimPrefix(strings.ToUpper(s), "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	switch s {
	case "every day", "daily":
		return rrule.NewRRule(rrule.ROption{Freq: rrule.DAILY})
	case "every weekday", "weekdays":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		})
	case "every weekend", "weekends":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		})
	case "every other day":
		return rrule.NewRRule(rrule.ROption{Freq: rrule.DAILY, Interval: 2})
	}

	if m := everyNDays.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n < 1 {
			return nil, fmt.Errorf("unrecognized recurrence %q", s)
		}
		return rrule.NewRRule(rrule.ROption{Freq: rrule.DAILY, Interval: n})
	}

	// "every monday", "every mon and thu", "every monday, wednesday, friday"
	if rest, ok := strings.CutPrefix(s, "every "); ok {
		var days []rrule.Weekday
		for _, name := range strings.FieldsFunc(rest, func(r rune) bool { return r == ',' || r == ' ' }) {
			if name == "and" {
				continue
			}
			wd, ok := rruleWeekday(name)
			if !ok {
				return nil, fmt.Errorf("unrecognized recurrence %q", s)
			}
			days = append(days, wd)
		}
		if len(days) > 0 {
			return rrule.NewRRule(rrule.ROption{Freq: rrule.WEEKLY, Byweekday: days})
		}
	}

	return nil, fmt.Errorf("unrecognized recurrence %q", s)
}

// Expand returns the calendar days matched by the pattern between from and
// to inclusive, in order. Both bounds are truncated to the day.
func Expand(pattern string, from, to time.Time) ([]time.Time, error) {
	r, err := ParseRecurrence(pattern)
	if err != nil {
		return nil, err
	}

	start, end := Truncate(from), Truncate(to)
	if end.Before(start) {
		return nil, fmt.Errorf("--to (%s) must not be before --from (%s)", Format(end), Format(start))
	}

	// Anchor the rule on the range start so intervals count from there.
	opts := r.OrigOptions
	opts.Dtstart = start
	anchored, err := rrule.NewRRule(opts)
	if err != nil {
		return nil, err
	}

	occurrences := anchored.Between(start, end, true)
	out := make([]time.Time, 0, len(occurrences))
	for _, d := range occurrences {
		out = append(out, Truncate(d.In(start.Location())))
	}
	return out, nil
}

var rruleWeekdays = map[string]rrule.Weekday{
	"sunday": rrule.SU, "sun": rrule.SU,
	"monday": rrule.MO, "mon": rrule.MO,
	"tuesday": rrule.TU, "tue": rrule.TU,
	"wednesday": rrule.WE, "wed": rrule.WE,
	"thursday": rrule.TH, "thu": rrule.TH,
	"friday": rrule.FR, "fri": rrule.FR,
	"saturday": rrule.SA, "sat": rrule.SA,
}

func rruleWeekday(s string) (rrule.Weekday, bool) {
	wd, ok := rruleWeekdays[s]
	return wd, ok
}
