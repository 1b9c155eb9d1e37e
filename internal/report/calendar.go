package report

import (
	"sort"
	"time"

	"github.com/fitfriend/fitfriend/internal/attendance"
)

// CalendarData marks the attended days of one month.
type CalendarData struct {
	Year         int
	Month        time.Month
	DaysInMonth  int
	FirstWeekday time.Weekday
	Selected     string
	Visits       map[int][]string // day-of-month -> members, sorted
}

// Attended reports whether anyone in the selection visited on day.
func (c CalendarData) Attended(day int) bool {
	return len(c.Visits[day]) > 0
}

// AttendedDays returns the attended days in ascending order.
func (c CalendarData) AttendedDays() []int {
	days := make([]int, 0, len(c.Visits))
	for d := range c.Visits {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// BuildCalendar collects the days in year/month that have entries for the
// selected member (or anyone, for AllMembers).
func BuildCalendar(entries []attendance.Entry, selected string, year int, month time.Month) CalendarData {
	data := CalendarData{
		Year:         year,
		Month:        month,
		DaysInMonth:  daysIn(year, month),
		FirstWeekday: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday(),
		Selected:     selected,
		Visits:       make(map[int][]string),
	}

	for _, e := range FilterByMember(entries, selected) {
		d, err := time.Parse(attendance.DateLayout, e.Date)
		if err != nil {
			continue
		}
		if d.Year() != year || d.Month() != month {
			continue
		}
		data.Visits[d.Day()] = append(data.Visits[d.Day()], e.Member)
	}

	for day := range data.Visits {
		sort.Strings(data.Visits[day])
	}
	return data
}

// AddMonths shifts a year/month pair by n months.
func AddMonths(year int, month time.Month, n int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return t.Year(), t.Month()
}
