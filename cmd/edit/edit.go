// Package edit implements the edit command for rewriting notes.
package edit

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/internal/cmdutil"
)

// EditCmd replaces the text of a single note.
var EditCmd = &cobra.Command{
	Use:     "edit CATEGORY INDEX NOTE...",
	Aliases: []string{"e"},
	Short:   "Edit a note",
	Long: "Edit a note.\n\n" +
		"Replaces the text of the note at INDEX in CATEGORY with the remaining " +
		"arguments joined by spaces. The note keeps its position.",
	Example: `  # Reword the first note in Work
  noots edit Work 1 Standup at 9:30

  # Same, using the short alias
  noots e Work 1 Standup at 9:30`,
	Args:    cobra.MinimumNArgs(3),
	PreRunE: validateEdit,
	RunE:    runEdit,
}

func init() {
	// Arguments after CATEGORY are never flags, so "-1" reaches the index check.
	EditCmd.Flags().SetInterspersed(false)
}

func validateEdit(cmd *cobra.Command, args []string) error {
	if _, err := cmdutil.ParseIndex(args[1]); err != nil {
		return err
	}

	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	index, err := cmdutil.ParseIndex(args[1])
	if err != nil {
		return err
	}

	nb, err := cmdutil.OpenNotebook(cmd)
	if err != nil {
		return err
	}
	return nb.Edit(args[0], index, strings.Join(args[2:], " "))
}
