// Package config provides the config parent command and subcommands.
package config

import (
	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/cmd/config/subcommands"
)

// ConfigCmd groups the commands that inspect and change the noots config file.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage noots configuration",
	Long: "Manage noots configuration.\n\n" +
		"Settings are read from config.yaml in $NOOTS_CONFIG_DIR, ~/.config/noots " +
		"or the current directory, in that order. Any key can also be set through " +
		"a NOOTS_ environment variable, e.g. NOOTS_STORE_PATH for store.path.",
	Args: cobra.NoArgs,
}

func init() {
	ConfigCmd.AddCommand(
		subcommands.ShowCmd,
		subcommands.EditCmd,
		subcommands.ValidateCmd,
		subcommands.ResetCmd,
	)
}
