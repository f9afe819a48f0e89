// Package export renders the note collection in portable formats.
package export

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/leefowlercu/noots/internal/export/formatters"
	"github.com/leefowlercu/noots/internal/notes"
)

// ExportStats contains statistics about an export operation.
type ExportStats struct {
	ExportID      string        `json:"export_id"`
	CategoryCount int           `json:"category_count"`
	NoteCount     int           `json:"note_count"`
	ExportedAt    time.Time     `json:"exported_at"`
	Duration      time.Duration `json:"duration"`
	Format        string        `json:"format"`
	OutputSize    int           `json:"output_size"`
}

// ExportOptions configures an export operation.
type ExportOptions struct {
	// Format specifies the output format (yaml, json, toml).
	Format string

	// Categories limits the export to categories matching any of these glob
	// patterns ("Work", "Proj*", "{Home,Garden}"). Empty exports everything.
	Categories []string
}

// DefaultExportOptions returns sensible defaults.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Format: "yaml",
	}
}

// Exporter exports note collections in various formats.
type Exporter struct {
	formatters map[string]formatters.Formatter
	now        func() time.Time
	newID      func() string
}

// NewExporter creates a new exporter with the built-in formatters registered.
func NewExporter() *Exporter {
	e := &Exporter{
		formatters: make(map[string]formatters.Formatter),
		now:        time.Now,
		newID:      uuid.NewString,
	}

	e.RegisterFormatter("yaml", formatters.NewYAMLFormatter())
	e.RegisterFormatter("json", formatters.NewJSONFormatter())
	e.RegisterFormatter("toml", formatters.NewTOMLFormatter())

	return e
}

// RegisterFormatter registers a formatter for a format name.
func (e *Exporter) RegisterFormatter(name string, f formatters.Formatter) {
	e.formatters[name] = f
}

// Formats returns the registered format names in sorted order.
func (e *Exporter) Formats() []string {
	names := make([]string, 0, len(e.formatters))
	for name := range e.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidatePatterns reports the first category pattern that is not a valid glob.
// A pattern spelling one of categories exactly is always accepted.
func ValidatePatterns(patterns, categories []string) error {
	for _, p := range patterns {
		if slices.Contains(categories, p) {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid category pattern %q", p)
		}
	}
	return nil
}

// Export formats c according to opts.
func (e *Exporter) Export(c *notes.Collection, opts ExportOptions) ([]byte, *ExportStats, error) {
	startTime := e.now()

	formatter, ok := e.formatters[opts.Format]
	if !ok {
		return nil, nil, fmt.Errorf("unknown format: %s", opts.Format)
	}
	if err := ValidatePatterns(opts.Categories, c.Categories()); err != nil {
		return nil, nil, err
	}

	snapshot := formatters.NewSnapshot(c, startTime)
	snapshot.ID = e.newID()
	snapshot = applyFilters(snapshot, opts)

	formatted, err := formatter.Format(snapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to format snapshot; %w", err)
	}

	stats := &ExportStats{
		ExportID:      snapshot.ID,
		CategoryCount: len(snapshot.Categories),
		NoteCount:     snapshot.NoteCount(),
		ExportedAt:    snapshot.ExportedAt,
		Duration:      e.now().Sub(startTime),
		Format:        opts.Format,
		OutputSize:    len(formatted),
	}

	return formatted, stats, nil
}

// applyFilters keeps only categories matching one of the requested patterns.
// Patterns must already be validated.
func applyFilters(snapshot *formatters.Snapshot, opts ExportOptions) *formatters.Snapshot {
	if len(opts.Categories) == 0 {
		return snapshot
	}

	filtered := &formatters.Snapshot{
		ID:         snapshot.ID,
		Version:    snapshot.Version,
		ExportedAt: snapshot.ExportedAt,
	}
	for _, c := range snapshot.Categories {
		if matchesAny(opts.Categories, c.Name) {
			filtered.Categories = append(filtered.Categories, c)
		}
	}
	return filtered
}

func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if p == name {
			return true
		}
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
