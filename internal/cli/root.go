package cli

import (
	"github.com/fitfriend/fitfriend/internal/config"
	"github.com/fitfriend/fitfriend/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fitfriend",
		Short: "Log and review gym attendance for a small group",
		Long: `fitfriend keeps a local log of who went to the gym and when.

Data lives under ~/.fitfriend (override with FITFRIEND_HOME). The storage
backend is chosen in the config file or with FITFRIEND_BACKEND.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(); err != nil {
				return err
			}
			logging.Setup()
			return nil
		},
	}

	cmd.SetHelpFunc(colorizedHelpFunc())
	cmd.AddCommand(
		membersCmd,
		logCmd,
		listCmd,
		removeCmd,
		clearCmd,
		reportCmd,
		calendarCmd,
		configCmd,
		versionCmd,
	)
	return cmd
}

func Execute() error {
	return rootCmd.Execute()
}
