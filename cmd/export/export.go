// Package export implements the export command for writing notes in portable formats.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/internal/cmdutil"
	"github.com/leefowlercu/noots/internal/config"
	"github.com/leefowlercu/noots/internal/export"
	"github.com/leefowlercu/noots/internal/tui/pager"
	"github.com/leefowlercu/noots/internal/tui/styles"
)

// Flag variables for the export command.
var (
	exportFormat     string
	exportOutput     string
	exportCategories []string
	exportClipboard  bool
)

// copyToClipboard is replaced in tests; headless machines have no clipboard.
var copyToClipboard = clipboard.WriteAll

// ExportCmd writes all notes in yaml, json or toml.
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes to yaml, json or toml",
	Long: "Export notes to yaml, json or toml.\n\n" +
		"Categories are written in sorted order. Output goes to stdout unless " +
		"--output names a file or --clipboard is set; terminal output is syntax " +
		"highlighted. The default format comes from export.format in the " +
		"configuration. --category accepts glob patterns and may be repeated. " +
		"The note store itself is never modified.",
	Example: `  # Export all notes as YAML to stdout
  noots export

  # Export as JSON to a file
  noots export --format json --output notes.json

  # Export only the Work category as TOML
  noots export -f toml --category Work

  # Copy every category starting with "Proj" to the clipboard
  noots export --category 'Proj*' --clipboard`,
	Args:    cobra.NoArgs,
	PreRunE: validateExport,
	RunE:    runExport,
}

func init() {
	ExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "",
		"Output format: yaml, json or toml (defaults to export.format)")
	ExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"Write to file instead of stdout")
	ExportCmd.Flags().StringSliceVar(&exportCategories, "category", nil,
		"Only export categories matching these glob patterns")
	ExportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false,
		"Copy to the system clipboard instead of stdout")
}

func validateExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "" {
		formats := export.NewExporter().Formats()
		if !slices.Contains(formats, strings.ToLower(exportFormat)) {
			return fmt.Errorf("invalid format %q; must be one of: %s", exportFormat, strings.Join(formats, ", "))
		}
	}

	if exportClipboard && exportOutput != "" {
		return fmt.Errorf("--clipboard and --output cannot be used together")
	}

	// All validation passed - errors after this are runtime errors
	cmd.SilenceUsage = true
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(exportFormat)
	if format == "" {
		format = config.GetString("export.format")
	}

	nb, err := cmdutil.OpenNotebook(cmd)
	if err != nil {
		return err
	}

	c, err := nb.Load()
	if err != nil {
		return err
	}

	opts := export.DefaultExportOptions()
	opts.Format = format
	opts.Categories = exportCategories

	data, stats, err := export.NewExporter().Export(c, opts)
	if err != nil {
		return fmt.Errorf("failed to export notes; %w", err)
	}

	switch {
	case exportClipboard:
		if err := copyToClipboard(string(data)); err != nil {
			return fmt.Errorf("failed to copy to clipboard; %w", err)
		}
		printSummary(cmd, stats, "the clipboard")
		return nil
	case exportOutput != "":
		path, err := writeExportFile(exportOutput, data)
		if err != nil {
			return err
		}
		printSummary(cmd, stats, path)
		return nil
	}

	out := cmd.OutOrStdout()
	if pager.IsTerminal(out) {
		return export.Highlight(out, data, stats.Format)
	}
	_, err = out.Write(data)
	return err
}

func writeExportFile(output string, data []byte) (string, error) {
	path, err := cmdutil.ResolvePath(output)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path; %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory; %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file; %w", err)
	}
	return path, nil
}

func printSummary(cmd *cobra.Command, stats *export.ExportStats, dest string) {
	summary := fmt.Sprintf("Exported %d notes in %d categories to %s (%s, %d bytes)",
		stats.NoteCount, stats.CategoryCount, dest, stats.Format, stats.OutputSize)
	fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessText.Render(summary))
}
