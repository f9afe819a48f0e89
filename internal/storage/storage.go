// Package storage persists note collections.
package storage

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/leefowlercu/noots/internal/notes"
)

// ErrMalformedStore is returned when a non-empty store cannot be parsed as a note collection.
var ErrMalformedStore = errors.New("malformed note store")

// indent is the number of spaces used per nesting level in the serialized form.
const indent = 4

// Store loads and saves the full note collection.
type Store interface {
	// Load returns the persisted collection, or an empty one if nothing is stored.
	Load() (*notes.Collection, error)

	// Save replaces the persisted collection with c.
	Save(c *notes.Collection) error
}

// Encode serializes a collection as block-style YAML in category insertion order.
func Encode(c *notes.Collection) ([]byte, error) {
	if c == nil {
		c = notes.New()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode notes; %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode notes; %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses serialized notes. Empty input, comment-only input and an
// explicit null document all decode to an empty collection.
func Decode(data []byte) (*notes.Collection, error) {
	c := notes.New()
	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w; %w", ErrMalformedStore, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return c, nil
	}

	if err := c.UnmarshalYAML(doc.Content[0]); err != nil {
		return nil, fmt.Errorf("%w; %w", ErrMalformedStore, err)
	}
	return c, nil
}
