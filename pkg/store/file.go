// Package store holds the persistence boundaries around the codec: the
// codec converts between coordinates and ISO 6709 text, and this package
// owns the surrounding record structure (a file, a database column). The
// codec itself never touches I/O.
package store

import (
	"fmt"
	"os"

	"github.com/kass/go-iso6709/pkg/coord"
	"github.com/kass/go-iso6709/pkg/iso6709"
)

// FileStore persists a coordinate list as a single ISO 6709 text payload.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Save writes the list in wire form, replacing any previous content.
func (s *FileStore) Save(l coord.List) error {
	if err := os.WriteFile(s.path, []byte(iso6709.WriteList(l)), 0o644); err != nil {
		return fmt.Errorf("write coordinate file: %w", err)
	}
	return nil
}

// Load reads and decodes the stored list. An existing empty file loads as
// an empty list; a missing file is an error.
func (s *FileStore) Load() (coord.List, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read coordinate file: %w", err)
	}
	list, err := iso6709.Read(string(payload))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return list, nil
}
