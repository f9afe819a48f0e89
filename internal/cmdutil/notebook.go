package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/noots/internal/config"
	"github.com/leefowlercu/noots/internal/notebook"
	"github.com/leefowlercu/noots/internal/storage"
)

// StoreFlag is the persistent flag that overrides store.path.
const StoreFlag = "store"

// StorePath returns the note store path for cmd.
// The --store flag wins over configuration when set.
func StorePath(cmd *cobra.Command) (string, error) {
	path := config.GetString("store.path")
	if f := cmd.Flags().Lookup(StoreFlag); f != nil && f.Changed {
		path = f.Value.String()
	}
	if path == "" {
		return storage.DefaultPath()
	}

	resolved, err := ResolvePath(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve store path %q; %w", path, err)
	}
	return resolved, nil
}

// OpenNotebook builds a Notebook for cmd from the effective configuration.
// Output and input are bound to the command's streams.
func OpenNotebook(cmd *cobra.Command) (*notebook.Notebook, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration; %w", err)
	}

	path, err := StorePath(cmd)
	if err != nil {
		return nil, err
	}

	logger := slog.Default()
	store := storage.NewFileStore(path, storage.WithLogger(logger))

	return notebook.New(store,
		notebook.WithOutput(cmd.OutOrStdout()),
		notebook.WithInput(cmd.InOrStdin()),
		notebook.WithLogger(logger),
		notebook.WithDefaultCategory(cfg.Notes.DefaultCategory),
	), nil
}
