package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// File persists a value as one JSON document on disk. Writes are whole-file
// and serialized by a mutex, last writer wins.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// Load decodes the stored document into v. It reports false
// when the file does not exist yet.
func (f *File) Load(v any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("storage read %s: %w", f.path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("storage decode %s: %w", f.path, err)
	}
	return true, nil
}

func (f *File) Save(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage encode: %w", err)
	}
	if err := os.WriteFile(f.path, b, 0o644); err != nil {
		return fmt.Errorf("storage write %s: %w", f.path, err)
	}
	return nil
}
