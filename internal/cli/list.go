package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/fitfriend/fitfriend/internal/dates"
	"github.com/fitfriend/fitfriend/internal/report"
	"github.com/spf13/cobra"
)

var listCmd = LeafCommand{
	Use:   "list",
	Short: "List logged visits, newest first",
	StrFlags: []StringFlag{
		{Name: "member", Usage: "only show this member (default: all)"},
		{Name: "month", Usage: "only show this month (1-12)"},
		{Name: "year", Usage: "year for --month (default: current year)"},
	},
	IntFlags: []IntFlag{
		{Name: "limit", Usage: "show at most this many entries (0 for all)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		opts := listOptions{}
		opts.member, _ = cmd.Flags().GetString("member")
		opts.month, _ = cmd.Flags().GetString("month")
		opts.year, _ = cmd.Flags().GetString("year")
		opts.limit, _ = cmd.Flags().GetInt("limit")

		return runList(cmd, env.store, opts, nowFn())
	},
}.Build()

type listOptions struct {
	member string
	month  string
	year   string
	limit  int
}

func runList(cmd *cobra.Command, store *attendance.Store, opts listOptions, now time.Time) error {
	selected, err := resolveMember(store.ListMembers(), opts.member, true)
	if err != nil {
		return err
	}
	if opts.limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	entries := report.FilterByMember(store.ListAttendance(), selected)

	if opts.month != "" || opts.year != "" {
		year, month, err := dates.ParseMonth(opts.month, opts.year, now)
		if err != nil {
			return err
		}
		prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
		if opts.month == "" {
			prefix = fmt.Sprintf("%04d-", year)
		}
		var filtered []attendance.Entry
		for _, e := range entries {
			if strings.HasPrefix(e.Date, prefix) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	sortNewestFirst(entries)

	w := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no visits logged"))
		return nil
	}

	total := len(entries)
	if opts.limit > 0 && opts.limit < total {
		entries = entries[:opts.limit]
	}

	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Silent(e.ID), e.Date, Primary(e.Member))
	}
	if len(entries) < total {
		_, _ = fmt.Fprintln(w, Silent(fmt.Sprintf("showing %d of %d entries", len(entries), total)))
	}
	return nil
}

// sortNewestFirst orders by date descending, then member and id so that
// output is stable.
func sortNewestFirst(entries []attendance.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.Member != b.Member {
			return a.Member < b.Member
		}
		return a.ID < b.ID
	})
}
