package storage

import (
	"github.com/leefowlercu/noots/internal/notes"
)

// MemoryStore keeps the serialized collection in memory.
// It round-trips through the same encoding as FileStore.
type MemoryStore struct {
	data  []byte
	saves int
}

// NewMemoryStore returns a store holding data, which may be empty.
func NewMemoryStore(data []byte) *MemoryStore {
	return &MemoryStore{data: data}
}

// Load decodes the stored bytes.
func (s *MemoryStore) Load() (*notes.Collection, error) {
	return Decode(s.data)
}

// Save encodes c and replaces the stored bytes.
func (s *MemoryStore) Save(c *notes.Collection) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	s.data = data
	s.saves++
	return nil
}

// Bytes returns the currently stored serialization.
func (s *MemoryStore) Bytes() []byte {
	return s.data
}

// Saves returns how many times Save succeeded.
func (s *MemoryStore) Saves() int {
	return s.saves
}
