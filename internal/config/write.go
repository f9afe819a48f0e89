package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configDirPerms  = 0700
	configFilePerms = 0600
)

// Write validates cfg and writes it to path with a generated header.
// The file is replaced through a rename so a failed write keeps the previous contents.
func Write(cfg *Config, path string) error {
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("refusing to write invalid config; %w", err)
	}

	path = ExpandPath(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, configDirPerms); err != nil {
		return fmt.Errorf("failed to create config directory %s; %w", dir, err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# noots configuration\n# Generated: %s\n\n", time.Now().Format(time.RFC3339))

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config; %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal config; %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), configFilePerms); err != nil {
		return fmt.Errorf("failed to write config file %s; %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write config file %s; %w", path, err)
	}

	return nil
}

// Backup copies the config file at path to a timestamped sibling and returns its path.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read config file %s; %w", path, err)
	}

	backupPath := fmt.Sprintf("%s.backup.%d", path, time.Now().Unix())
	if err := os.WriteFile(backupPath, data, configFilePerms); err != nil {
		return "", fmt.Errorf("failed to write backup %s; %w", backupPath, err)
	}
	return backupPath, nil
}
