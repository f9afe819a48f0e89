package formatters

import (
	"time"

	"github.com/leefowlercu/noots/internal/notes"
)

// SnapshotVersion is the version stamped on exported snapshots.
const SnapshotVersion = 1

// Formatter formats a notes snapshot into a specific output format.
type Formatter interface {
	// Format converts the snapshot to the output format.
	Format(snapshot *Snapshot) ([]byte, error)

	// Name returns the formatter name.
	Name() string

	// ContentType returns the MIME content type.
	ContentType() string

	// FileExtension returns the typical file extension.
	FileExtension() string
}

// Snapshot is a point-in-time copy of the notes, with categories in sorted order.
type Snapshot struct {
	// ID identifies one export run. Empty when the caller does not assign one.
	ID         string
	Version    int
	ExportedAt time.Time
	Categories []Category
}

// Category is one category and its notes in list order.
type Category struct {
	Name  string
	Notes []string
}

// NewSnapshot builds a snapshot from c.
func NewSnapshot(c *notes.Collection, exportedAt time.Time) *Snapshot {
	s := &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: exportedAt.UTC(),
		Categories: make([]Category, 0, c.Len()),
	}
	for _, name := range c.Sorted() {
		list, _ := c.Notes(name)
		s.Categories = append(s.Categories, Category{Name: name, Notes: list})
	}
	return s
}

// NoteCount returns the total number of notes across categories.
func (s *Snapshot) NoteCount() int {
	total := 0
	for _, c := range s.Categories {
		total += len(c.Notes)
	}
	return total
}
