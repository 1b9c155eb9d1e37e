package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/fitfriend/fitfriend/internal/dates"
	"github.com/fitfriend/fitfriend/internal/report"
	"github.com/spf13/cobra"
)

var reportCmd = LeafCommand{
	Use:   "report",
	Short: "Show monthly and all-time visit counts per member",
	StrFlags: []StringFlag{
		{Name: "member", Usage: "member to report on (default: all)"},
		{Name: "month", Usage: "month number 1-12 (default: current month)"},
		{Name: "year", Usage: "year (default: current year)"},
		{Name: "export", Usage: "write the report to a file: md, html or pdf"},
		{Name: "output", Usage: "output path for --export (default: generated name in the current directory)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		opts := reportOptions{}
		opts.member, _ = cmd.Flags().GetString("member")
		opts.month, _ = cmd.Flags().GetString("month")
		opts.year, _ = cmd.Flags().GetString("year")
		opts.export, _ = cmd.Flags().GetString("export")
		opts.output, _ = cmd.Flags().GetString("output")

		return runReport(cmd, env.store, opts, nowFn())
	},
}.Build()

type reportOptions struct {
	member string
	month  string
	year   string
	export string
	output string
}

func runReport(cmd *cobra.Command, store *attendance.Store, opts reportOptions, now time.Time) error {
	members := store.ListMembers()
	selected, err := resolveMember(members, opts.member, true)
	if err != nil {
		return err
	}
	year, month, err := dates.ParseMonth(opts.month, opts.year, now)
	if err != nil {
		return err
	}

	entries := store.ListAttendance()

	if opts.export != "" {
		data := report.BuildExportData(entries, members, selected, year, month)
		return runExport(cmd, data, opts.export, opts.output)
	}

	w := cmd.OutOrStdout()
	summary := report.BuildSummary(entries, members, selected, year, month)
	cal := report.BuildCalendar(entries, selected, year, month)

	label := "All Members"
	if !report.IsAll(selected) {
		label = selected
	}
	_, _ = fmt.Fprintf(w, "%s %s\n\n", Bold(fmt.Sprintf("Attendance Report: %s %d", month, year)), Silent("("+label+")"))
	_, _ = fmt.Fprintln(w, renderSummaryTable(summary))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprint(w, renderCalendar(cal))
	return nil
}

// renderSummaryTable draws the per-member counts.
func renderSummaryTable(s report.SummaryData) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(silentStyle).
		Headers("Member", fmt.Sprintf("Visits (%s %d)", s.Month, s.Year), "Total Visits (All Time)").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Inherit(infoStyle).Bold(true)
			}
			if col > 0 {
				return style.Align(lipgloss.Right)
			}
			return style
		})

	for _, r := range s.Rows {
		t.Row(r.Name, strconv.Itoa(r.MonthCount), strconv.Itoa(r.TotalCount))
	}
	return t.String()
}

var exportFormats = map[string]string{
	"md":       "md",
	"markdown": "md",
	"html":     "html",
	"pdf":      "pdf",
}

// runExport renders data in the requested format and writes it to output,
// or to a generated file name when output is empty.
func runExport(cmd *cobra.Command, data report.ExportData, format, output string) error {
	ext, ok := exportFormats[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return fmt.Errorf("unsupported export format '%s' (expected md, html or pdf)", format)
	}

	var content []byte
	var err error
	switch ext {
	case "md":
		content = []byte(report.RenderMarkdown(data))
	case "html":
		content, err = report.RenderHTML(data)
	case "pdf":
		content, err = report.RenderPDF(data)
	}
	if err != nil {
		return err
	}

	if output == "" {
		output = data.FileName(ext)
	}
	if err := os.WriteFile(output, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s report to %s\n", Primary(strings.ToUpper(ext)), Primary(output))
	return nil
}
