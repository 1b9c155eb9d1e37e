// Package report aggregates attendance entries into the summary, calendar
// and export views.
package report

import (
	"sort"
	"time"

	"github.com/fitfriend/fitfriend/internal/attendance"
)

// AllMembers selects every member in filters.
const AllMembers = "All"

// MemberSummary holds visit counts for one member.
type MemberSummary struct {
	Name       string
	MonthCount int // visits in the reference month
	TotalCount int // visits all time
}

// SummaryData is the summary table for a reference month.
type SummaryData struct {
	Year     int
	Month    time.Month
	Selected string
	Rows     []MemberSummary
}

// IsAll reports whether selected means "every member".
func IsAll(selected string) bool {
	return selected == "" || selected == AllMembers
}

// FilterByMember keeps the entries of one member, or all of them when
// selected is empty or AllMembers.
func FilterByMember(entries []attendance.Entry, selected string) []attendance.Entry {
	if IsAll(selected) {
		return entries
	}
	var out []attendance.Entry
	for _, e := range entries {
		if e.Member == selected {
			out = append(out, e)
		}
	}
	return out
}

// BuildSummary counts visits per roster member. Every member gets a row and
// entries for names outside the roster are ignored. An entry whose date does
// not parse still counts toward the total but never toward a month. When selected is a roster member only that row is returned,
// otherwise rows are sorted by total visits with roster order breaking ties.
func BuildSummary(entries []attendance.Entry, members []string, selected string, year int, month time.Month) SummaryData {
	rows := make([]MemberSummary, len(members))
	index := make(map[string]int, len(members))
	for i, m := range members {
		rows[i] = MemberSummary{Name: m}
		if _, dup := index[m]; !dup {
			index[m] = i
		}
	}

	for _, e := range entries {
		i, ok := index[e.Member]
		if !ok {
			continue
		}
		rows[i].TotalCount++
		d, err := time.Parse(attendance.DateLayout, e.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			rows[i].MonthCount++
		}
	}

	data := SummaryData{Year: year, Month: month, Selected: selected}
	if i, ok := index[selected]; ok && !IsAll(selected) {
		data.Rows = []MemberSummary{rows[i]}
		return data
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCount > rows[j].TotalCount
	})
	data.Rows = rows
	return data
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
