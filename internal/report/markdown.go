package report

import (
	"fmt"
	"strings"
)

// Title is the heading shared by every export format.
func (d ExportData) Title() string {
	return fmt.Sprintf("Attendance Report: %s %d", d.Month, d.Year)
}

// RenderMarkdown renders the export as a Markdown document.
func RenderMarkdown(data ExportData) string {
	var b strings.Builder
	period := fmt.Sprintf("%s %d", data.Month, data.Year)

	fmt.Fprintf(&b, "# %s\n\n", data.Title())
	fmt.Fprintf(&b, "Member: %s\n\n", mdEscape(data.Label()))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "| Member | Visits (%s) | Total Visits (All Time) |\n", period)
	b.WriteString("|---|---:|---:|\n")
	for _, row := range data.Summary {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", mdEscape(row.Name), row.MonthCount, row.TotalCount)
	}

	b.WriteString("\n## Visits\n\n")
	if len(data.Days) == 0 {
		b.WriteString("_No visits recorded._\n")
		return b.String()
	}
	for _, day := range data.Days {
		names := make([]string, len(day.Members))
		for i, n := range day.Members {
			names[i] = mdEscape(n)
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", day.Date.Format("Mon, Jan 2"), strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "\nTotal visits in %s: %d\n", period, data.MonthVisits)
	return b.String()
}

var mdReplacer = strings.NewReplacer(`|`, `\|`, `*`, `\*`, `_`, `\_`)

func mdEscape(s string) string {
	return mdReplacer.Replace(s)
}
