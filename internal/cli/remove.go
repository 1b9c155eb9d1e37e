package cli

import (
	"fmt"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/spf13/cobra"
)

var removeCmd = LeafCommand{
	Use:   "remove <id>",
	Short: "Remove a logged visit",
	Args:  cobra.ExactArgs(1),
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
		return runRemove(cmd, env.store, args[0], confirmFor(cmd.OutOrStdout(), yesFlag))
	},
}.Build()

func runRemove(cmd *cobra.Command, store *attendance.Store, id string, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()

	e, ok := store.FindAttendance(id)
	if !ok {
		_, _ = fmt.Fprintf(w, "entry '%s' not found, nothing removed\n", id)
		return nil
	}

	_, _ = fmt.Fprintf(w, "  member: %s\n", Primary(e.Member))
	_, _ = fmt.Fprintf(w, "  date:   %s\n", Primary(e.Date))

	if confirm == nil {
		return fmt.Errorf("refusing to remove without confirmation; pass --yes")
	}
	ok, err := confirm("Remove this entry?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	if err := store.RemoveAttendance(id); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "removed entry %s\n", Silent(id))
	return nil
}
