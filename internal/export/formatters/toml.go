package formatters

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// TOMLFormatter formats snapshots as TOML with one [[categories]] table per category.
type TOMLFormatter struct{}

// NewTOMLFormatter creates a new TOML formatter.
func NewTOMLFormatter() *TOMLFormatter {
	return &TOMLFormatter{}
}

// Name returns the formatter name.
func (f *TOMLFormatter) Name() string {
	return "toml"
}

// ContentType returns the MIME content type.
func (f *TOMLFormatter) ContentType() string {
	return "application/toml"
}

// FileExtension returns the typical file extension.
func (f *TOMLFormatter) FileExtension() string {
	return ".toml"
}

type tomlSnapshot struct {
	ID         string         `toml:"export_id,omitempty"`
	Version    int            `toml:"version"`
	ExportedAt string         `toml:"exported_at"`
	Categories []tomlCategory `toml:"categories"`
}

type tomlCategory struct {
	Name  string   `toml:"name"`
	Notes []string `toml:"notes,multiline"`
}

// Format converts the snapshot to TOML.
func (f *TOMLFormatter) Format(snapshot *Snapshot) ([]byte, error) {
	out := tomlSnapshot{
		ID:         snapshot.ID,
		Version:    snapshot.Version,
		ExportedAt: snapshot.ExportedAt.Format("2006-01-02T15:04:05Z07:00"),
		Categories: make([]tomlCategory, 0, len(snapshot.Categories)),
	}
	for _, c := range snapshot.Categories {
		out.Categories = append(out.Categories, tomlCategory{Name: c.Name, Notes: c.Notes})
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TOML; %w", err)
	}
	return data, nil
}
