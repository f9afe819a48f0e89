package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leefowlercu/noots/internal/logging"
)

// ValidationError represents a config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	b.WriteString("config validation failed:\n")
	for _, err := range e {
		b.WriteString("  - ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return b.String()
}

// validExportFormats lists formats the export command understands.
var validExportFormats = map[string]bool{
	"yaml": true,
	"json": true,
	"toml": true,
}

// Validate checks the configuration for errors.
// Returns ValidationErrors if validation fails.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("must be one of: %s; got %q", strings.Join(logging.LevelNames(), ", "), cfg.LogLevel),
		})
	}

	if cfg.LogFile == "" {
		errs = append(errs, ValidationError{
			Field:   "log_file",
			Message: "must not be empty",
		})
	}

	if cfg.LogMaxSizeMB < 1 {
		errs = append(errs, ValidationError{
			Field:   "log_max_size_mb",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.LogMaxSizeMB),
		})
	}

	if cfg.LogMaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "log_max_backups",
			Message: fmt.Sprintf("must be non-negative, got %d", cfg.LogMaxBackups),
		})
	}

	if cfg.Store.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "store.path",
			Message: "must not be empty",
		})
	}

	if strings.TrimSpace(cfg.Notes.DefaultCategory) == "" {
		errs = append(errs, ValidationError{
			Field:   "notes.default_category",
			Message: "must not be empty",
		})
	}

	if !validExportFormats[cfg.Export.Format] {
		errs = append(errs, ValidationError{
			Field:   "export.format",
			Message: fmt.Sprintf("must be one of: yaml, json, toml; got %q", cfg.Export.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve ValidationError
	var ves ValidationErrors
	return errors.As(err, &ve) || errors.As(err, &ves)
}
