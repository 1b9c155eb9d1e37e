package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/fitfriend/fitfriend/internal/dates"
	"github.com/fitfriend/fitfriend/internal/report"
	"github.com/spf13/cobra"
)

var calendarCmd = LeafCommand{
	Use:   "calendar",
	Short: "Browse attended days month by month",
	StrFlags: []StringFlag{
		{Name: "member", Usage: "member to show (default: all)"},
		{Name: "month", Usage: "month number 1-12 (default: current month)"},
		{Name: "year", Usage: "year (default: current year)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		member, _ := cmd.Flags().GetString("member")
		month, _ := cmd.Flags().GetString("month")
		year, _ := cmd.Flags().GetString("year")

		return runCalendar(cmd, env.store, member, month, year, nowFn(), interactive(cmd.OutOrStdout()))
	},
}.Build()

func runCalendar(cmd *cobra.Command, store *attendance.Store, member, monthStr, yearStr string, now time.Time, tty bool) error {
	selected, err := resolveMember(store.ListMembers(), member, true)
	if err != nil {
		return err
	}
	year, month, err := dates.ParseMonth(monthStr, yearStr, now)
	if err != nil {
		return err
	}

	m := newCalendarModel(store.ListAttendance(), selected, year, month, now)
	if !tty {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), m.body())
		return nil
	}

	_, err = tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout())).Run()
	return err
}

// calendarModel is the interactive month view.
type calendarModel struct {
	entries  []attendance.Entry
	selected string
	year     int
	month    time.Month
	now      time.Time
}

func newCalendarModel(entries []attendance.Entry, selected string, year int, month time.Month, now time.Time) *calendarModel {
	return &calendarModel{
		entries:  entries,
		selected: selected,
		year:     year,
		month:    month,
		now:      now,
	}
}

func (m *calendarModel) Init() tea.Cmd { return nil }

func (m *calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.year, m.month = report.AddMonths(m.year, m.month, -1)
	case "right", "l":
		m.year, m.month = report.AddMonths(m.year, m.month, 1)
	case "t":
		m.year, m.month = m.now.Year(), m.now.Month()
	}
	return m, nil
}

func (m *calendarModel) View() string {
	return m.body() + "\n" + Silent("←/h previous  →/l next  t today  q quit") + "\n"
}

// body renders the grid and the visit listing for the current month.
func (m *calendarModel) body() string {
	cal := report.BuildCalendar(m.entries, m.selected, m.year, m.month)

	var b strings.Builder
	b.WriteString(renderCalendar(cal))

	days := cal.AttendedDays()
	if len(days) == 0 {
		b.WriteString("\n" + Silent("no visits this month") + "\n")
		return b.String()
	}

	b.WriteString("\n")
	visits := 0
	for _, day := range days {
		names := cal.Visits[day]
		visits += len(names)
		d := time.Date(cal.Year, cal.Month, day, 0, 0, 0, 0, time.UTC)
		fmt.Fprintf(&b, "%s  %s\n", Silent(d.Format("Mon Jan 2")), strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "\n%d days attended, %d visits\n", len(days), visits)
	return b.String()
}

var attendedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#32CD32")).Bold(true)

// renderCalendar draws a Sunday-first month grid. Attended days are
// bracketed so they stand out without colour.
func renderCalendar(cal report.CalendarData) string {
	const cell = 4
	width := cell * 7

	var b strings.Builder
	title := fmt.Sprintf("%s %d", cal.Month, cal.Year)
	if !report.IsAll(cal.Selected) {
		title += " · " + cal.Selected
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, Bold(title)))
	b.WriteString("\n")

	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(Info(fmt.Sprintf(" %s ", wd)))
	}
	b.WriteString("\n")

	col := int(cal.FirstWeekday)
	b.WriteString(strings.Repeat(" ", col*cell))
	for day := 1; day <= cal.DaysInMonth; day++ {
		if cal.Attended(day) {
			b.WriteString(attendedStyle.Render(fmt.Sprintf("[%2d]", day)))
		} else {
			fmt.Fprintf(&b, " %2d ", day)
		}
		col++
		if col == 7 && day != cal.DaysInMonth {
			b.WriteString("\n")
			col = 0
		}
	}
	b.WriteString("\n")
	return b.String()
}
