package config

import "github.com/spf13/viper"

// Default configuration values.
const (
	DefaultLogLevel      = "warn"
	DefaultLogFile       = "~/.config/noots/noots.log"
	DefaultStorePath     = "~/noots.yaml"
	DefaultNoteCategory  = "General"
	DefaultDisplayPager  = false
	DefaultLogMaxSizeMB  = 5
	DefaultLogMaxBackups = 3
	DefaultExportFormat  = "yaml"
)

// setDefaults registers all default configuration values with a viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("log_max_backups", DefaultLogMaxBackups)

	v.SetDefault("store.path", DefaultStorePath)

	v.SetDefault("notes.default_category", DefaultNoteCategory)

	v.SetDefault("display.pager", DefaultDisplayPager)

	v.SetDefault("export.format", DefaultExportFormat)
}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() Config {
	return Config{
		LogLevel:      DefaultLogLevel,
		LogFile:       DefaultLogFile,
		LogMaxSizeMB:  DefaultLogMaxSizeMB,
		LogMaxBackups: DefaultLogMaxBackups,
		Store: StoreConfig{
			Path: DefaultStorePath,
		},
		Notes: NotesConfig{
			DefaultCategory: DefaultNoteCategory,
		},
		Display: DisplayConfig{
			Pager: DefaultDisplayPager,
		},
		Export: ExportConfig{
			Format: DefaultExportFormat,
		},
	}
}
