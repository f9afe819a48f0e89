package formatters

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSONFormatter formats snapshots as JSON.
type JSONFormatter struct {
	pretty bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{pretty: true}
}

// NewCompactJSONFormatter creates a JSON formatter without indentation.
func NewCompactJSONFormatter() *JSONFormatter {
	return &JSONFormatter{pretty: false}
}

// Name returns the formatter name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// ContentType returns the MIME content type.
func (f *JSONFormatter) ContentType() string {
	return "application/json"
}

// FileExtension returns the typical file extension.
func (f *JSONFormatter) FileExtension() string {
	return ".json"
}

type jsonSnapshot struct {
	ID         string         `json:"export_id,omitempty"`
	Version    int            `json:"version"`
	ExportedAt string         `json:"exported_at"`
	NoteCount  int            `json:"note_count"`
	Categories []jsonCategory `json:"categories"`
}

type jsonCategory struct {
	Name  string   `json:"name"`
	Notes []string `json:"notes"`
}

// Format converts the snapshot to JSON.
func (f *JSONFormatter) Format(snapshot *Snapshot) ([]byte, error) {
	out := jsonSnapshot{
		ID:         snapshot.ID,
		Version:    snapshot.Version,
		ExportedAt: snapshot.ExportedAt.Format(time.RFC3339),
		NoteCount:  snapshot.NoteCount(),
		Categories: make([]jsonCategory, 0, len(snapshot.Categories)),
	}
	for _, c := range snapshot.Categories {
		out.Categories = append(out.Categories, jsonCategory{Name: c.Name, Notes: c.Notes})
	}

	var (
		data []byte
		err  error
	)
	if f.pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON; %w", err)
	}
	return append(data, '\n'), nil
}
