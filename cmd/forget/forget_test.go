package forget

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/internal/testutil"
)

func TestForgetCmd_Basic(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteStore("Work:\n    - Standup at 9\n    - Review PR\n    - Ship it\n")

	cmd := createTestCommand()
	cmd.SetArgs([]string{"Work", "2"})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("forget command failed: %v", err)
	}

	if got, want := stdout.String(), "Forgot Work 2: Review PR\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if got, want := env.ReadStore(), "Work:\n    - Standup at 9\n    - Ship it\n"; got != want {
		t.Errorf("store = %q, want %q", got, want)
	}
}

func TestForgetCmd_LastNoteRemovesCategory(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteStore("Work:\n    - Standup at 9\nGeneral:\n    - Buy milk\n")

	cmd := createTestCommand()
	cmd.SetArgs([]string{"Work", "1"})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("forget command failed: %v", err)
	}

	if got, want := env.ReadStore(), "General:\n    - Buy milk\n"; got != want {
		t.Errorf("store = %q, want %q", got, want)
	}
}

func TestForgetCmd_Missing(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown category", []string{"Home", "1"}, "There is no note Home 1\n"},
		{"index too high", []string{"Work", "5"}, "There is no note Work 5\n"},
		{"index zero", []string{"Work", "0"}, "There is no note Work 0\n"},
		{"negative index", []string{"Work", "-1"}, "There is no note Work -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnv(t)
			env.WriteStore("Work:\n    - Standup at 9\n")

			cmd := createTestCommand()
			cmd.SetArgs(tt.args)
			var stdout bytes.Buffer
			cmd.SetOut(&stdout)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("forget command failed: %v", err)
			}

			if got := stdout.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if got, want := env.ReadStore(), "Work:\n    - Standup at 9\n"; got != want {
				t.Errorf("store changed to %q", got)
			}
		})
	}
}

func TestForgetCmd_InvalidIndex(t *testing.T) {
	testutil.NewTestEnv(t)

	cmd := createTestCommand()
	cmd.SetArgs([]string{"Work", "two"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for non-numeric index")
	}
	if cmd.SilenceUsage {
		t.Error("usage should be shown for argument errors")
	}
}

func TestForgetCmd_WrongArgCount(t *testing.T) {
	testutil.NewTestEnv(t)

	cmd := createTestCommand()
	cmd.SetArgs([]string{"Work"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error when index is missing")
	}
}

// Helper functions

func createTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     ForgetCmd.Use,
		Aliases: ForgetCmd.Aliases,
		Short:   ForgetCmd.Short,
		Long:    ForgetCmd.Long,
		Example: ForgetCmd.Example,
		Args:    ForgetCmd.Args,
		PreRunE: ForgetCmd.PreRunE,
		RunE:    ForgetCmd.RunE,
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
