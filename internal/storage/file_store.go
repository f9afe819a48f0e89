package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leefowlercu/noots/internal/notes"
)

const (
	// DefaultFileName is the store file name inside the user's home directory.
	DefaultFileName = "noots.yaml"

	// tempFilePrefix prefixes the temporary file written before the atomic rename.
	tempFilePrefix = ".noots-tmp-"

	filePerms = 0644
	dirPerms  = 0755
)

// FileStore keeps the collection in a single YAML file.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithLogger sets the logger used by the store.
func WithLogger(logger *slog.Logger) FileStoreOption {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "storage", "path", path)
	return s
}

// DefaultPath returns ~/noots.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory; %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the backing file. A missing file is created empty.
func (s *FileStore) Load() (*notes.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read note store %s; %w", s.path, err)
		}
		s.logger.Debug("note store missing; creating empty file")
		if err := s.create(); err != nil {
			return nil, err
		}
		return notes.New(), nil
	}

	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load note store %s; %w", s.path, err)
	}

	s.logger.Debug("note store loaded", "categories", c.Len())
	return c, nil
}

// Save rewrites the backing file with the full collection.
// The file is written to a temporary sibling and renamed into place.
func (s *FileStore) Save(c *notes.Collection) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerms); err != nil {
		return fmt.Errorf("failed to create store directory; %w", err)
	}

	target, err := s.target()
	if err != nil {
		return err
	}

	if err := writeFileAtomic(target, data, filePerms); err != nil {
		return fmt.Errorf("failed to save note store %s; %w", s.path, err)
	}

	s.logger.Debug("note store saved", "categories", c.Len(), "bytes", len(data))
	return nil
}

// target returns the file a save should replace. A symlinked store is
// written through to the file it points at so the link survives.
func (s *FileStore) target() (string, error) {
	resolved, err := filepath.EvalSymlinks(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.path, nil
		}
		return "", fmt.Errorf("failed to resolve note store %s; %w", s.path, err)
	}
	if resolved != s.path {
		s.logger.Debug("note store is a symlink", "target", resolved)
	}
	return resolved, nil
}

func (s *FileStore) create() error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerms); err != nil {
		return fmt.Errorf("failed to create store directory; %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, filePerms)
	if err != nil {
		return fmt.Errorf("failed to create note store %s; %w", s.path, err)
	}
	return f.Close()
}

// writeFileAtomic writes data to a temp file in the target directory and renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file; %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file; %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file; %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file; %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file; %w", err)
	}

	return os.Rename(tmp.Name(), filename)
}
