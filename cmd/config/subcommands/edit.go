package subcommands

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/internal/config"
	"github.com/leefowlercu/noots/internal/tui/styles"
)

// EditCmd opens the configuration file in an editor.
var EditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration file in your default editor",
	Long: "Edit the configuration file in your default editor.\n\n" +
		"Opens the noots configuration file in the editor specified by " +
		"the EDITOR or VISUAL environment variable. If neither is set, attempts to " +
		"use common editors (vim, vi, nano, emacs) in order. A missing config file " +
		"is created with the default values first.",
	Example: `  # Edit configuration with default editor
  noots config edit

  # Edit with a specific editor
  EDITOR=code noots config edit`,
	Args:    cobra.NoArgs,
	PreRunE: validateEdit,
	RunE:    runEdit,
}

func validateEdit(cmd *cobra.Command, args []string) error {
	// All errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	configPath := config.GetConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := config.NewDefaultConfig()
		if err := config.Write(&cfg, configPath); err != nil {
			return fmt.Errorf("failed to create config file; %w", err)
		}
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found; set EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = cmd.InOrStdin()
	editorCmd.Stdout = cmd.OutOrStdout()
	editorCmd.Stderr = cmd.ErrOrStderr()

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error; %w", err)
	}

	if _, err := config.LoadFromPath(configPath); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Notice.Render("Configuration saved but is invalid:"))
		fmt.Fprintf(cmd.OutOrStdout(), "  %v\n", err)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessText.Render("Configuration saved."))
	return nil
}

func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}

	editors := []string{"vim", "vi", "nano", "emacs"}
	for _, editor := range editors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor
		}
	}

	return ""
}
