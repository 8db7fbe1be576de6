// Package storage owns the save file on disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/markuz5116/tracker-go/internal/codec"
	"github.com/markuz5116/tracker-go/internal/task"
)

// Store is an explicitly constructed handle to one save file. Callers build
// one and pass it where it is needed; there is no process-wide instance.
type Store struct {
	path string
}

// Open prepares a store for the given save file, creating the parent
// directory if it does not exist yet.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{path: path}, nil
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the whole save file. A missing file is an empty
// list, not an error. A corrupt file fails as a whole; the caller starts
// empty and surfaces the error.
func (s *Store) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read save file %s: %w", s.path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	tasks, err := codec.DecodeAll(strings.Split(text, "\n"))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return tasks, nil
}

// Save rewrites the entire save file from the list. The write goes through a
// temp file and rename so a failed write never truncates the previous save.
func (s *Store) Save(tasks []task.Task) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".save-*")
	if err != nil {
		return fmt.Errorf("create temp save file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(codec.EncodeAll(tasks)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close save file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace save file %s: %w", s.path, err)
	}
	return nil
}
