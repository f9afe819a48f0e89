// Package remember implements the remember command for saving notes.
package remember

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/internal/cmdutil"
)

// Flag variables for the remember command.
var (
	rememberCategory string
)

// RememberCmd saves a new note under a category.
var RememberCmd = &cobra.Command{
	Use:     "remember [-c CATEGORY] NOTE...",
	Aliases: []string{"r"},
	Short:   "Remember a new note",
	Long: "Remember a new note.\n\n" +
		"All remaining arguments are joined with spaces to form the note text. " +
		"Notes are saved under the category given with --category, or under the " +
		"configured default category (General unless notes.default_category is set). " +
		"A note that already exists in the category is not saved twice.",
	Example: `  # Remember a note in the default category
  noots remember Buy milk

  # Remember a note in a specific category
  noots r -c Work Standup at 9`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: validateRemember,
	RunE:    runRemember,
}

func init() {
	RememberCmd.Flags().StringVarP(&rememberCategory, "category", "c", "",
		"Category to save the note under (defaults to notes.default_category)")
}

func validateRemember(cmd *cobra.Command, args []string) error {
	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runRemember(cmd *cobra.Command, args []string) error {
	nb, err := cmdutil.OpenNotebook(cmd)
	if err != nil {
		return err
	}
	return nb.Remember(rememberCategory, strings.Join(args, " "))
}
