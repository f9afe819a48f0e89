// Package cmd wires the noots command tree.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/cmd/clear"
	configcmd "github.com/leefowlercu/noots/cmd/config"
	"github.com/leefowlercu/noots/cmd/edit"
	"github.com/leefowlercu/noots/cmd/export"
	"github.com/leefowlercu/noots/cmd/forget"
	"github.com/leefowlercu/noots/cmd/remember"
	"github.com/leefowlercu/noots/cmd/show"
	versioncmd "github.com/leefowlercu/noots/cmd/version"
	"github.com/leefowlercu/noots/internal/cmdutil"
	"github.com/leefowlercu/noots/internal/config"
	"github.com/leefowlercu/noots/internal/logging"
	"github.com/leefowlercu/noots/internal/tui/styles"
	"github.com/leefowlercu/noots/internal/version"
)

// logManager is the global logging manager, created in init() and upgraded after config loads
var logManager *logging.Manager

// Flag variables for the root command.
var (
	rootPager bool
	rootStore string
)

var nootsCmd = &cobra.Command{
	Use:   "noots",
	Short: "Remember small notes from the command line",
	Long: "noots keeps short text notes grouped by category in a single YAML file " +
		"in your home directory (~/noots.yaml by default).\n\n" +
		"Run without a subcommand to show all notes. Notes are numbered from 1 within " +
		"each category; use those numbers with forget and edit.",
	Example: `  # Show all notes
  noots

  # Remember a note, then forget it
  noots r -c Work Standup at 9
  noots f Work 1`,
	Version:           version.Get().Short(),
	Args:              cobra.NoArgs,
	PersistentPreRunE: runInitialize,
	PreRunE:           validateRoot,
	RunE:              runRoot,
}

func init() {
	// Create logging Manager in bootstrap mode (stderr text only)
	logManager = logging.NewManager()
	slog.SetDefault(logManager.Logger())

	nootsCmd.Flags().BoolVarP(&rootPager, "pager", "p", false, "Display notes in a scrollable pager")
	nootsCmd.PersistentFlags().StringVar(&rootStore, cmdutil.StoreFlag, "",
		"Path to the note store (overrides store.path)")

	nootsCmd.AddCommand(show.ShowCmd)
	nootsCmd.AddCommand(remember.RememberCmd)
	nootsCmd.AddCommand(forget.ForgetCmd)
	nootsCmd.AddCommand(edit.EditCmd)
	nootsCmd.AddCommand(clear.ClearCmd)
	nootsCmd.AddCommand(export.ExportCmd)
	nootsCmd.AddCommand(configcmd.ConfigCmd)
	nootsCmd.AddCommand(versioncmd.VersionCmd)
}

func runInitialize(cmd *cobra.Command, args []string) error {
	logger := logManager.Logger()

	if err := config.Init(); err != nil {
		return err
	}

	// Upgrade logging after config is available
	logFile := config.GetPath("log_file")
	levelStr := config.GetString("log_level")
	level, ok := logging.ParseLevel(levelStr)
	if !ok {
		level = logging.DefaultLevel
		if levelStr != "" {
			logger.Warn("invalid log level configured, using default", "configured", levelStr, "default", level.String())
		}
	}

	err := logManager.Upgrade(logFile, level,
		logging.WithMaxSizeMB(config.GetInt("log_max_size_mb")),
		logging.WithMaxBackups(config.GetInt("log_max_backups")),
	)
	if err != nil {
		// Continue in bootstrap mode
		logger.Warn("failed to enable file logging, continuing with stderr only", "error", err)
	}

	logger.Debug("command starting", "command", cmd.CommandPath(), "config", config.ConfigFilePath())
	return nil
}

func validateRoot(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return show.Show(cmd, rootPager)
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	nootsCmd.SilenceErrors = true
	nootsCmd.SilenceUsage = true

	// Ensure logging is properly closed on exit
	defer func() { _ = logManager.Close() }()

	err := nootsCmd.Execute()

	if err != nil {
		cmd, _, _ := nootsCmd.Find(os.Args[1:])
		if cmd == nil {
			cmd = nootsCmd
		}

		fmt.Fprintln(os.Stderr, styles.ErrorText.Render(fmt.Sprintf("Error: %v", err)))
		if !cmd.SilenceUsage {
			fmt.Fprintf(os.Stderr, "\n")
			cmd.SetOut(os.Stderr)
			_ = cmd.Usage()
		}

		return err
	}

	return nil
}
