package config

// Config is the root configuration structure for the application.
type Config struct {
	LogLevel      string        `yaml:"log_level" mapstructure:"log_level"`
	LogFile       string        `yaml:"log_file" mapstructure:"log_file"`
	LogMaxSizeMB  int           `yaml:"log_max_size_mb" mapstructure:"log_max_size_mb"`
	LogMaxBackups int           `yaml:"log_max_backups" mapstructure:"log_max_backups"`
	Store         StoreConfig   `yaml:"store" mapstructure:"store"`
	Notes         NotesConfig   `yaml:"notes" mapstructure:"notes"`
	Display       DisplayConfig `yaml:"display" mapstructure:"display"`
	Export        ExportConfig  `yaml:"export" mapstructure:"export"`
}

// StoreConfig holds note store configuration.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// NotesConfig holds note defaults.
type NotesConfig struct {
	DefaultCategory string `yaml:"default_category" mapstructure:"default_category"`
}

// DisplayConfig holds output configuration.
type DisplayConfig struct {
	Pager bool `yaml:"pager" mapstructure:"pager"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}
