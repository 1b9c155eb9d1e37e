package cli

import (
	"fmt"
	"strings"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/fitfriend/fitfriend/internal/report"
	"github.com/spf13/cobra"
)

var membersCmd = LeafCommand{
	Use:   "members",
	Short: "List the gym roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		return runMembers(cmd, env.store)
	},
}.Build()

func runMembers(cmd *cobra.Command, store *attendance.Store) error {
	w := cmd.OutOrStdout()
	for i, m := range store.ListMembers() {
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent(fmt.Sprintf("%d.", i+1)), Primary(m))
	}
	return nil
}

// resolveMember matches name against the roster, exactly first and then
// case-insensitively. With allowAll, an empty name or "all" selects every
// member.
func resolveMember(members []string, name string, allowAll bool) (string, error) {
	name = strings.TrimSpace(name)
	if allowAll && (name == "" || strings.EqualFold(name, report.AllMembers)) {
		return report.AllMembers, nil
	}

	for _, m := range members {
		if m == name {
			return m, nil
		}
	}
	for _, m := range members {
		if strings.EqualFold(m, name) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown member '%s' (expected one of: %s)", name, strings.Join(members, ", "))
}
