// Package testutil provides testing utilities for isolated test environments.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leefowlercu/noots/internal/config"
)

// TestEnv provides an isolated test environment with its own config directory
// and note store.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	HomeDir   string
}

// NewTestEnv creates an isolated test environment.
// It uses environment variables to override all paths, ensuring complete
// isolation even when tests run in parallel across packages.
// Cleanup is automatic via t.Cleanup.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	root := t.TempDir()
	homeDir := filepath.Join(root, "home")
	configDir := filepath.Join(root, "config")
	for _, dir := range []string{homeDir, configDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create test dir %s: %v", dir, err)
		}
	}

	// These env vars override viper settings via AutomaticEnv()
	t.Setenv("HOME", homeDir)
	t.Setenv("NOOTS_CONFIG_DIR", configDir)
	t.Setenv("NOOTS_STORE_PATH", filepath.Join(homeDir, "noots.yaml"))
	t.Setenv("NOOTS_LOG_FILE", filepath.Join(configDir, "noots.log"))

	config.Reset()
	if err := config.Init(); err != nil {
		t.Fatalf("failed to initialize test config: %v", err)
	}

	env := &TestEnv{
		t:         t,
		ConfigDir: configDir,
		HomeDir:   homeDir,
	}

	t.Cleanup(func() {
		config.Reset()
	})

	return env
}

// StorePath returns the path of the note store used by the environment.
func (e *TestEnv) StorePath() string {
	return filepath.Join(e.HomeDir, "noots.yaml")
}

// ConfigPath returns the path of the config file inside the environment.
func (e *TestEnv) ConfigPath() string {
	return filepath.Join(e.ConfigDir, "config.yaml")
}

// WriteStore writes raw content to the note store.
func (e *TestEnv) WriteStore(content string) {
	e.t.Helper()
	if err := os.WriteFile(e.StorePath(), []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write store: %v", err)
	}
}

// ReadStore returns the raw content of the note store.
func (e *TestEnv) ReadStore() string {
	e.t.Helper()
	data, err := os.ReadFile(e.StorePath())
	if err != nil {
		e.t.Fatalf("failed to read store: %v", err)
	}
	return string(data)
}

// WriteConfig writes raw content to the config file and reloads configuration.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()
	if err := os.WriteFile(e.ConfigPath(), []byte(content), 0600); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
	config.Reset()
	if err := config.Init(); err != nil {
		e.t.Fatalf("failed to reload test config: %v", err)
	}
}
