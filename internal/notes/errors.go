package notes

import (
	"errors"
	"fmt"
)

// Sentinel errors for collection operations.
var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrDuplicateNote = errors.New("note already exists")
	ErrEmptyCategory = errors.New("category must not be empty")
)

// NotFoundError identifies a category/index pair that does not address a note.
type NotFoundError struct {
	Category string
	Index    int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("there is no note %s %d", e.Category, e.Index)
}

// Unwrap allows errors.Is(err, ErrNoteNotFound).
func (e *NotFoundError) Unwrap() error {
	return ErrNoteNotFound
}
