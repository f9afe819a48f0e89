// Package show implements the show command for listing notes.
package show

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/internal/cmdutil"
	"github.com/leefowlercu/noots/internal/config"
	"github.com/leefowlercu/noots/internal/tui/styles"
	"github.com/leefowlercu/noots/internal/watcher"
)

// Flag variables for the show command.
var (
	showPager bool
	showWatch bool
)

// ShowCmd lists every note grouped by category.
var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all saved notes",
	Long: "Show all saved notes.\n\n" +
		"Categories are listed in sorted order, each followed by its notes " +
		"numbered from 1. The numbers are the indexes used by forget and edit. " +
		"Use --pager to browse long listings in a scrollable view, or --watch " +
		"to print the listing again whenever the note store changes.",
	Example: `  # Show all notes
  noots show

  # Browse notes in the pager
  noots show --pager

  # Keep the listing current while editing notes in another terminal
  noots show --watch`,
	Args:    cobra.NoArgs,
	PreRunE: validateShow,
	RunE:    runShow,
}

func init() {
	ShowCmd.Flags().BoolVarP(&showPager, "pager", "p", false, "Display notes in a scrollable pager")
	ShowCmd.Flags().BoolVarP(&showWatch, "watch", "w", false, "Reprint notes whenever the store changes")
}

func validateShow(cmd *cobra.Command, args []string) error {
	if showPager && showWatch {
		return fmt.Errorf("--pager and --watch cannot be used together")
	}

	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	if showWatch {
		return watch(cmd)
	}
	return Show(cmd, showPager)
}

// Show prints all notes for cmd. The pager is used when paged is set or
// display.pager is enabled in configuration.
func Show(cmd *cobra.Command, paged bool) error {
	nb, err := cmdutil.OpenNotebook(cmd)
	if err != nil {
		return err
	}
	return nb.Show(paged || config.GetBool("display.pager"))
}

// watch prints all notes, then prints them again after every change to the
// store until the command context ends or the process is interrupted.
// A store that fails to load mid-edit is reported and watching continues.
func watch(cmd *cobra.Command) error {
	nb, err := cmdutil.OpenNotebook(cmd)
	if err != nil {
		return err
	}
	path, err := cmdutil.StorePath(cmd)
	if err != nil {
		return err
	}

	// Show creates the store and its directory when missing, so it runs first.
	if err := nb.Show(false); err != nil {
		return err
	}

	w, err := watcher.New(path, watcher.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.HelpText.Render(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", path)))

	return w.Run(ctx, func() {
		fmt.Fprintln(out)
		if err := nb.Show(false); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), styles.ErrorText.Render(fmt.Sprintf("Error: %v", err)))
		}
	})
}
