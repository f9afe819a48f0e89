package formatters

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/leefowlercu/noots/internal/notes"
)

// YAMLFormatter formats snapshots in the same layout as the note store,
// so an export can be copied over a store file directly.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Name returns the formatter name.
func (f *YAMLFormatter) Name() string {
	return "yaml"
}

// ContentType returns the MIME content type.
func (f *YAMLFormatter) ContentType() string {
	return "application/yaml"
}

// FileExtension returns the typical file extension.
func (f *YAMLFormatter) FileExtension() string {
	return ".yaml"
}

// Format converts the snapshot to a YAML mapping of category to notes.
func (f *YAMLFormatter) Format(snapshot *Snapshot) ([]byte, error) {
	c := notes.New()
	for _, category := range snapshot.Categories {
		for _, note := range category.Notes {
			// Duplicates from hand-edited stores are collapsed here.
			_ = c.Add(category.Name, note)
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML; %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML; %w", err)
	}
	return buf.Bytes(), nil
}
