package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leefowlercu/noots/internal/version"
)

func createTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     VersionCmd.Use,
		Args:    VersionCmd.Args,
		PreRunE: VersionCmd.PreRunE,
		RunE:    VersionCmd.RunE,
	}
	cmd.Flags().StringVar(&versionFormat, "format", "text", "Output format (text or yaml)")
	return cmd
}

func TestVersionCommand_Text(t *testing.T) {
	versionFormat = "text"
	cmd := createTestCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("version output has %d lines, expected 5:\n%s", len(lines), buf.String())
	}
	for _, label := range []string{"Version:", "Git Commit:", "Build Date:", "Go Version:", "Platform:"} {
		if !strings.Contains(buf.String(), label) {
			t.Errorf("version output missing label %q", label)
		}
	}
}

func TestVersionCommand_YAML(t *testing.T) {
	cmd := createTestCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "yaml"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	var got version.Info
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if got != version.Get() {
		t.Errorf("decoded info = %+v, want %+v", got, version.Get())
	}
}

func TestVersionCommand_InvalidFormat(t *testing.T) {
	cmd := createTestCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--format", "xml"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("Execute() error = %v, want unsupported format", err)
	}
}
