package version

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leefowlercu/noots/internal/version"
)

var versionFormat string

// VersionCmd displays version and build information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build information",
	Long: "Display version and build information.\n\n" +
		"Shows the release version, git commit, build date, Go toolchain " +
		"and platform of the current noots binary.",
	Example: `  # Display version information
  noots version

  # Machine-readable output
  noots version --format yaml`,
	Args:    cobra.NoArgs,
	PreRunE: validateVersion,
	RunE:    runVersion,
}

func init() {
	VersionCmd.Flags().StringVar(&versionFormat, "format", "text", "Output format (text or yaml)")
}

func validateVersion(cmd *cobra.Command, args []string) error {
	if versionFormat != "text" && versionFormat != "yaml" {
		return fmt.Errorf("unsupported format %q; must be text or yaml", versionFormat)
	}
	cmd.SilenceUsage = true
	return nil
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	out := cmd.OutOrStdout()

	if versionFormat == "yaml" {
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to marshal version info; %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	fmt.Fprintln(out, info.String())
	return nil
}
