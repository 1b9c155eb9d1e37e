package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fitfriend/fitfriend/internal/attendance"
)

// ExportDay lists who visited on one day.
type ExportDay struct {
	Date    time.Time
	Members []string
}

// ExportData holds everything a written report needs for one month.
type ExportData struct {
	Year        int
	Month       time.Month
	Selected    string
	Summary     []MemberSummary
	Days        []ExportDay
	MonthVisits int
}

// Label names the selection for titles.
func (d ExportData) Label() string {
	if IsAll(d.Selected) {
		return "All Members"
	}
	return d.Selected
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// FileName returns the default output name for ext, e.g.
// "attendance-alex-p-2024-05.pdf".
func (d ExportData) FileName(ext string) string {
	slug := strings.Trim(slugUnsafe.ReplaceAllString(strings.ToLower(d.Label()), "-"), "-")
	if slug == "" {
		slug = "member"
	}
	return fmt.Sprintf("attendance-%s-%04d-%02d.%s", slug, d.Year, int(d.Month), ext)
}

// BuildExportData combines the summary and the per-day visit listing for
// year/month.
func BuildExportData(entries []attendance.Entry, members []string, selected string, year int, month time.Month) ExportData {
	summary := BuildSummary(entries, members, selected, year, month)
	cal := BuildCalendar(entries, selected, year, month)

	data := ExportData{
		Year:     year,
		Month:    month,
		Selected: selected,
		Summary:  summary.Rows,
	}

	for _, day := range cal.AttendedDays() {
		names := cal.Visits[day]
		data.Days = append(data.Days, ExportDay{
			Date:    time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
			Members: names,
		})
		data.MonthVisits += len(names)
	}
	return data
}
