// Package clear implements the clear command for deleting every note.
package clear

import (
	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/internal/cmdutil"
)

// Flag variables for the clear command.
var (
	clearYes bool
)

// ClearCmd deletes all notes after confirmation.
var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notes",
	Long: "Delete all notes.\n\n" +
		"Shows every saved note and asks for confirmation before deleting them. " +
		"Any answer starting with y or Y confirms; anything else keeps the notes. " +
		"Use --yes to skip the question.",
	Example: `  # Delete all notes (prompts for confirmation)
  noots clear

  # Delete all notes without confirmation
  noots clear --yes`,
	Args:    cobra.NoArgs,
	PreRunE: validateClear,
	RunE:    runClear,
}

func init() {
	ClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip confirmation prompt")
}

func validateClear(cmd *cobra.Command, args []string) error {
	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	nb, err := cmdutil.OpenNotebook(cmd)
	if err != nil {
		return err
	}
	return nb.Clear(clearYes)
}
