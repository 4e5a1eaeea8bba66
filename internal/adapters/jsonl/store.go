package jsonl

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/example/wrk/internal/models"
	"github.com/example/wrk/internal/ports/secondary"
)

// Store reads and writes the interchange file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the interchange file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the interchange file path.
func (s *Store) Path() string {
	return s.path
}

// WriteAll replaces the interchange file with the encoded items. The write
// is atomic: a crash mid-export never leaves a torn file, only the previous
// complete snapshot.
func (s *Store) WriteAll(items []*models.WorkItem) error {
	data, err := Encode(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write interchange file: %w", err)
	}

	return nil
}

// ReadAll decodes the interchange file. An absent or empty file reports
// nothing to import via the bool, not an error.
func (s *Store) ReadAll() ([]*models.WorkItem, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read interchange file: %w", err)
	}

	items, err := Decode(data)
	if err != nil {
		return nil, false, err
	}

	if len(items) == 0 {
		return nil, false, nil
	}

	return items, true, nil
}

// Ensure Store implements the interface
var _ secondary.InterchangeStore = (*Store)(nil)
