package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the default path for the config file.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ConfigDir returns the config directory, honoring NOOTS_CONFIG_DIR.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "noots")
}

// ConfigExists returns true if the config file exists at the effective path.
func ConfigExists() bool {
	_, err := os.Stat(GetConfigPath())
	return err == nil
}
