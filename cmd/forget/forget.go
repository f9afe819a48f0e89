// Package forget implements the forget command for deleting notes.
package forget

import (
	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/internal/cmdutil"
)

// ForgetCmd deletes a single note.
var ForgetCmd = &cobra.Command{
	Use:     "forget CATEGORY INDEX",
	Aliases: []string{"f"},
	Short:   "Forget a note",
	Long: "Forget a note.\n\n" +
		"Deletes the note at INDEX in CATEGORY, using the numbers shown by the show " +
		"command. Notes after it move up by one. When the last note of a category " +
		"is forgotten the category is removed as well.",
	Example: `  # Forget the second note in Work
  noots forget Work 2

  # Same, using the short alias
  noots f Work 2`,
	Args:    cobra.ExactArgs(2),
	PreRunE: validateForget,
	RunE:    runForget,
}

func init() {
	// Arguments after CATEGORY are never flags, so "-1" reaches the index check.
	ForgetCmd.Flags().SetInterspersed(false)
}

func validateForget(cmd *cobra.Command, args []string) error {
	if _, err := cmdutil.ParseIndex(args[1]); err != nil {
		return err
	}

	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runForget(cmd *cobra.Command, args []string) error {
	index, err := cmdutil.ParseIndex(args[1])
	if err != nil {
		return err
	}

	nb, err := cmdutil.OpenNotebook(cmd)
	if err != nil {
		return err
	}
	return nb.Forget(args[0], index)
}
