package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/fitfriend/fitfriend/internal/dates"
	"github.com/spf13/cobra"
)

var logCmd = LeafCommand{
	Use:   "log",
	Short: "Log a gym visit",
	Long: `Log a gym visit for a roster member.

Without --member or --date the values are prompted for; outside a terminal
the last roster member and today are used. Logging the same member on the
same day twice keeps the existing entry.

With --repeat, every day matching the pattern between --from and --to
(default: today) is logged, e.g. --repeat "every mon, wed and fri".`,
	StrFlags: []StringFlag{
		{Name: "member", Usage: "roster member who visited"},
		{Name: "date", Usage: "visit date (e.g. 2024-05-01, yesterday, monday)"},
		{Name: "repeat", Usage: "recurrence pattern to backfill (daily, weekdays, every monday, RRULE)"},
		{Name: "from", Usage: "first day of the --repeat range"},
		{Name: "to", Usage: "last day of the --repeat range (default: today)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		opts := logOptions{}
		opts.member, _ = cmd.Flags().GetString("member")
		opts.date, _ = cmd.Flags().GetString("date")
		opts.repeat, _ = cmd.Flags().GetString("repeat")
		opts.from, _ = cmd.Flags().GetString("from")
		opts.to, _ = cmd.Flags().GetString("to")

		return runLog(cmd, env.store, promptKitFor(cmd.OutOrStdout()), opts, nowFn())
	},
}.Build()

type logOptions struct {
	member string
	date   string
	repeat string
	from   string
	to     string
}

func runLog(cmd *cobra.Command, store *attendance.Store, kit PromptKit, opts logOptions, now time.Time) error {
	if opts.repeat == "" && (opts.from != "" || opts.to != "") {
		return fmt.Errorf("--from and --to require --repeat")
	}
	if opts.repeat != "" && opts.date != "" {
		return fmt.Errorf("--date cannot be combined with --repeat")
	}

	member, err := pickMember(store.ListMembers(), opts.member, kit)
	if err != nil {
		return err
	}

	if opts.repeat != "" {
		return runLogRepeat(cmd, store, member, opts, now)
	}

	dateStr := opts.date
	if dateStr == "" && kit.Prompt != nil {
		dateStr, err = kit.Prompt("Date (YYYY-MM-DD, yesterday, monday; blank for today)")
		if err != nil {
			return err
		}
	}

	d, err := dates.Parse(dateStr, now)
	if err != nil {
		return err
	}
	if err := dates.Validate(d, now); err != nil {
		return err
	}

	res, err := store.Record(member, d)
	if err != nil {
		return fmt.Errorf("could not save attendance: %w", err)
	}
	printLogResult(cmd.OutOrStdout(), res)
	return nil
}

func runLogRepeat(cmd *cobra.Command, store *attendance.Store, member string, opts logOptions, now time.Time) error {
	if opts.from == "" {
		return fmt.Errorf("--repeat requires --from")
	}

	from, err := dates.Parse(opts.from, now)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	to := dates.Truncate(now)
	if opts.to != "" {
		if to, err = dates.Parse(opts.to, now); err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
	}
	if err := errors.Join(dates.Validate(from, now), dates.Validate(to, now)); err != nil {
		return err
	}

	days, err := dates.Expand(opts.repeat, from, to)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(days) == 0 {
		_, _ = fmt.Fprintf(w, "no days match '%s' between %s and %s\n", opts.repeat, dates.Format(from), dates.Format(to))
		return nil
	}

	results, err := store.RecordAll(member, days)
	if err != nil {
		return fmt.Errorf("could not save attendance: %w", err)
	}

	var created, existing, unsaved int
	for _, res := range results {
		printLogResult(w, res)
		switch {
		case !res.Persisted:
			unsaved++
		case res.Created:
			created++
		default:
			existing++
		}
	}

	summary := fmt.Sprintf("%d logged, %d already logged", created, existing)
	if unsaved > 0 {
		summary += fmt.Sprintf(", %d not saved", unsaved)
	}
	_, _ = fmt.Fprintln(w, Silent(summary))
	return nil
}

// pickMember resolves --member, or asks, or falls back to the last roster
// member.
func pickMember(members []string, flag string, kit PromptKit) (string, error) {
	if len(members) == 0 {
		return "", fmt.Errorf("the roster is empty")
	}
	if flag != "" {
		return resolveMember(members, flag, false)
	}

	last := len(members) - 1
	if kit.Select == nil {
		return members[last], nil
	}
	idx, err := kit.Select("Who went to the gym?", members, last)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(members) {
		return "", fmt.Errorf("invalid selection")
	}
	return members[idx], nil
}

func printLogResult(w io.Writer, res attendance.AddResult) {
	e := res.Entry
	switch {
	case !res.Persisted:
		_, _ = fmt.Fprintf(w, "%s %s on %s: no storage backend, the visit was not persisted\n",
			Warning("not saved"), Primary(e.Member), e.Date)
	case !res.Created:
		_, _ = fmt.Fprintf(w, "%s %s on %s %s\n",
			Info("already logged"), Primary(e.Member), e.Date, Silent("("+e.ID+")"))
	default:
		_, _ = fmt.Fprintf(w, "%s %s on %s %s\n",
			Success("logged"), Primary(e.Member), e.Date, Silent("("+e.ID+")"))
	}
}
