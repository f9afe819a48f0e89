// Package notes defines the in-memory note collection: categories mapped to ordered lists of notes.
package notes

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultCategory is the category used when none is given.
const DefaultCategory = "General"

// Collection maps category names to ordered lists of notes.
// Categories keep their insertion order; no category ever holds an empty list.
type Collection struct {
	order []string
	notes map[string][]string
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{notes: make(map[string][]string)}
}

// Len returns the number of categories.
func (c *Collection) Len() int {
	return len(c.order)
}

// IsEmpty reports whether the collection holds no notes at all.
func (c *Collection) IsEmpty() bool {
	return len(c.order) == 0
}

// Categories returns category names in insertion order.
func (c *Collection) Categories() []string {
	return slices.Clone(c.order)
}

// Sorted returns category names in byte-wise lexicographic order.
func (c *Collection) Sorted() []string {
	sorted := slices.Clone(c.order)
	slices.Sort(sorted)
	return sorted
}

// Notes returns a copy of the notes stored under category.
func (c *Collection) Notes(category string) ([]string, bool) {
	list, ok := c.notes[category]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// Add appends note to category, creating the category if needed.
// Returns ErrDuplicateNote if the exact note is already stored under category.
func (c *Collection) Add(category, note string) error {
	if category == "" {
		return ErrEmptyCategory
	}
	if c.notes == nil {
		c.notes = make(map[string][]string)
	}

	list, ok := c.notes[category]
	if !ok {
		c.order = append(c.order, category)
	} else if slices.Contains(list, note) {
		return fmt.Errorf("%w: %s %q", ErrDuplicateNote, category, note)
	}

	c.notes[category] = append(list, note)
	return nil
}

// Remove deletes the note at the 1-based index within category and returns its text.
// A category left without notes is removed entirely.
func (c *Collection) Remove(category string, index int) (string, error) {
	list, err := c.lookup(category, index)
	if err != nil {
		return "", err
	}

	removed := list[index-1]
	list = slices.Delete(list, index-1, index)
	if len(list) == 0 {
		c.dropCategory(category)
		return removed, nil
	}

	c.notes[category] = list
	return removed, nil
}

// Replace overwrites the note at the 1-based index within category and returns the previous text.
func (c *Collection) Replace(category string, index int, note string) (string, error) {
	list, err := c.lookup(category, index)
	if err != nil {
		return "", err
	}

	previous := list[index-1]
	list[index-1] = note
	return previous, nil
}

func (c *Collection) lookup(category string, index int) ([]string, error) {
	list, ok := c.notes[category]
	if !ok || index < 1 || index > len(list) {
		return nil, &NotFoundError{Category: category, Index: index}
	}
	return list, nil
}

func (c *Collection) dropCategory(category string) {
	delete(c.notes, category)
	if i := slices.Index(c.order, category); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
}

// MarshalYAML encodes the collection as a block-style mapping in insertion order.
func (c *Collection) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, category := range c.order {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: category}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, note := range c.notes[category] {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: note})
		}
		root.Content = append(root.Content, key, seq)
	}
	return root, nil
}

// UnmarshalYAML decodes a mapping of category names to note sequences.
// Null or empty categories are dropped; anything other than a mapping of scalar sequences is rejected.
func (c *Collection) UnmarshalYAML(value *yaml.Node) error {
	decoded := New()

	value = resolveAlias(value)
	if isNull(value) {
		*c = *decoded
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of categories, got %s", value.Line, kindName(value.Kind))
	}

	seen := make(map[string]bool)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := resolveAlias(value.Content[i])
		valNode := resolveAlias(value.Content[i+1])

		if keyNode.Kind != yaml.ScalarNode || keyNode.Value == "" || isNull(keyNode) {
			return fmt.Errorf("line %d: category name must be a non-empty string", keyNode.Line)
		}
		category := keyNode.Value
		if seen[category] {
			return fmt.Errorf("line %d: duplicate category %q", keyNode.Line, category)
		}
		seen[category] = true

		if isNull(valNode) {
			continue
		}
		if valNode.Kind != yaml.SequenceNode {
			return fmt.Errorf("line %d: category %q must hold a list of notes, got %s", valNode.Line, category, kindName(valNode.Kind))
		}

		var list []string
		for _, item := range valNode.Content {
			item = resolveAlias(item)
			if isNull(item) {
				continue
			}
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: note in category %q must be text, got %s", item.Line, category, kindName(item.Kind))
			}
			list = append(list, item.Value)
		}

		if len(list) == 0 {
			continue
		}
		decoded.order = append(decoded.order, category)
		decoded.notes[category] = list
	}

	*c = *decoded
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
