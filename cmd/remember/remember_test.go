package remember

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/internal/testutil"
)

func TestRememberCmd_DefaultCategory(t *testing.T) {
	env := testutil.NewTestEnv(t)

	cmd := createTestCommand()
	cmd.SetArgs([]string{"Buy", "milk"})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("remember command failed: %v", err)
	}

	if got, want := stdout.String(), "Remembered General 1: Buy milk\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if got, want := env.ReadStore(), "General:\n    - Buy milk\n"; got != want {
		t.Errorf("store = %q, want %q", got, want)
	}
}

func TestRememberCmd_CategoryFlag(t *testing.T) {
	env := testutil.NewTestEnv(t)

	cmd := createTestCommand()
	cmd.SetArgs([]string{"-c", "Work", "Standup", "at", "9"})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("remember command failed: %v", err)
	}

	if got := env.ReadStore(); !strings.Contains(got, "Work:\n    - Standup at 9\n") {
		t.Errorf("store = %q, want Work note", got)
	}
}

func TestRememberCmd_ConfiguredDefaultCategory(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfig("notes:\n  default_category: Inbox\n")

	cmd := createTestCommand()
	cmd.SetArgs([]string{"Call", "mom"})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("remember command failed: %v", err)
	}

	if got, want := stdout.String(), "Remembered Inbox 1: Call mom\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRememberCmd_Duplicate(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteStore("General:\n    - Buy milk\n")

	cmd := createTestCommand()
	cmd.SetArgs([]string{"Buy", "milk"})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("remember command failed: %v", err)
	}

	if got := stdout.String(); !strings.Contains(got, "Note already exists in General: Buy milk") {
		t.Errorf("output = %q, want duplicate notice", got)
	}
	if got, want := env.ReadStore(), "General:\n    - Buy milk\n"; got != want {
		t.Errorf("store = %q, want %q", got, want)
	}
}

func TestRememberCmd_RequiresNote(t *testing.T) {
	testutil.NewTestEnv(t)

	cmd := createTestCommand()
	cmd.SetArgs([]string{"-c", "Work"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error when no note text is given")
	}
}

// Helper functions

func createTestCommand() *cobra.Command {
	// Reset flag variables
	rememberCategory = ""

	cmd := &cobra.Command{
		Use:     RememberCmd.Use,
		Aliases: RememberCmd.Aliases,
		Short:   RememberCmd.Short,
		Long:    RememberCmd.Long,
		Example: RememberCmd.Example,
		Args:    RememberCmd.Args,
		PreRunE: RememberCmd.PreRunE,
		RunE:    RememberCmd.RunE,
	}

	cmd.Flags().StringVarP(&rememberCategory, "category", "c", "", "")

	return cmd
}
