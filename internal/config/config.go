// Package config loads noots configuration from file, environment and defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "NOOTS"

	// ConfigDirEnv names the environment variable that overrides the config directory.
	ConfigDirEnv = "NOOTS_CONFIG_DIR"
)

// configFilePath stores the path to the loaded config file
var configFilePath string

// Init initializes the configuration subsystem.
// It searches for configuration files in priority order:
//  1. Directory specified by NOOTS_CONFIG_DIR environment variable
//  2. ~/.config/noots/
//  3. Current working directory (.)
//
// If no config file is found, defaults are used.
// If a config file exists but is invalid or unreadable, Init returns an error.
func Init() error {
	v := viper.GetViper()
	configure(v)
	v.SetConfigName("config")
	addConfigPaths(v)

	if err := v.ReadInConfig(); err != nil {
		if isNotFound(err) {
			configFilePath = ""
			slog.Debug("no config file found; using defaults")
			return nil
		}
		return fmt.Errorf("failed to read config; %w", err)
	}

	configFilePath = v.ConfigFileUsed()
	slog.Debug("config initialized", "file", configFilePath)

	return nil
}

func addConfigPaths(v *viper.Viper) {
	if envPath := os.Getenv(ConfigDirEnv); envPath != "" {
		v.AddConfigPath(envPath)
	}

	if home := os.Getenv("HOME"); home != "" {
		v.AddConfigPath(filepath.Join(home, ".config", "noots"))
	}

	v.AddConfigPath(".")
}

// ConfigFilePath returns the path to the loaded config file,
// or empty string if using defaults only.
func ConfigFilePath() string {
	return configFilePath
}

// Reset clears the configuration state for testing purposes.
func Reset() {
	viper.Reset()
	configFilePath = ""
}

// Get returns the effective configuration as a validated Config.
func Get() (*Config, error) {
	return unmarshalConfig(viper.GetViper())
}

// GetString returns the string value for the given key.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns the integer value for the given key.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns the boolean value for the given key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetPath returns the string value for the given key with ~ expanded to $HOME.
func GetPath(key string) string {
	return ExpandPath(viper.GetString(key))
}

// ExpandPath expands a leading ~ in path to the user's home directory.
// Only "~" alone or "~/..." are expanded; "~user" is returned unchanged.
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) > 1 && path[1] != '/' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}

	return filepath.Join(home, path[2:])
}

// GetConfigPath returns the path where the config file should be located.
// If a config file is loaded, returns its path. Otherwise returns the default path.
func GetConfigPath() string {
	if configFilePath != "" {
		return configFilePath
	}
	return DefaultConfigPath()
}
