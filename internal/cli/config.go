package cli

import (
	"fmt"

	"github.com/fitfriend/fitfriend/internal/config"
	"github.com/spf13/cobra"
)

var configGetCmd = LeafCommand{
	Use:   "get [key]",
	Short: "Show configuration values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := config.HomeDir()
		if err != nil {
			return err
		}
		key := ""
		if len(args) == 1 {
			key = args[0]
		}
		return runConfigGet(cmd, homeDir, key)
	},
}.Build()

var configSetCmd = LeafCommand{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := config.HomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

var configPathCmd = LeafCommand{
	Use:   "path",
	Short: "Print where configuration and data are stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := config.HomeDir()
		if err != nil {
			return err
		}
		return runConfigPath(cmd, homeDir)
	},
}.Build()

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Manage fitfriend configuration",
	Subcommands: []*cobra.Command{
		configGetCmd,
		configSetCmd,
		configPathCmd,
	},
}.Build()

// runConfigGet prints the effective configuration, environment overrides
// included.
func runConfigGet(cmd *cobra.Command, homeDir, key string) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if key != "" {
		v, err := config.Get(cfg, key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, v)
		return nil
	}

	for _, k := range config.Keys {
		v, _ := config.Get(cfg, k)
		_, _ = fmt.Fprintf(w, "%s %s\n", Info(k+":"), v)
	}
	return nil
}

// runConfigSet updates the file only; environment overrides are not
// persisted.
func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}
	if err := config.Set(cfg, key, value); err != nil {
		return err
	}
	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}

	v, _ := config.Get(cfg, key)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "set %s to %s\n", Primary(key), Primary(v))
	return nil
}

func runConfigPath(cmd *cobra.Command, homeDir string) error {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s\n", Info("config:"), config.Path(homeDir))
	_, _ = fmt.Fprintf(w, "%s %s\n", Info("data:  "), config.DataDir(homeDir))
	return nil
}
