package cli

import (
	"fmt"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/spf13/cobra"
)

var clearCmd = LeafCommand{
	Use:   "clear",
	Short: "Delete every logged visit",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		yesFlag, _ := cmd.Flags().GetBool("yes")
		return runClear(cmd, env.store, confirmFor(cmd.OutOrStdout(), yesFlag))
	},
}.Build()

func runClear(cmd *cobra.Command, store *attendance.Store, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()

	if !store.Available() {
		_, _ = fmt.Fprintln(w, Warning("no storage backend, nothing to clear"))
		return nil
	}

	count := len(store.ListAttendance())
	if confirm == nil {
		return fmt.Errorf("refusing to clear without confirmation; pass --yes")
	}
	ok, err := confirm(fmt.Sprintf("Clear all attendance data (%d entries)? This action cannot be undone.", count))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	if err := store.ClearAllAttendance(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "cleared %s\n", Primary(fmt.Sprintf("%d entries", count)))
	return nil
}
