// Package jsondb is the flat-file fallback backend: one pretty-printed JSON
// array file per collection under a data directory, whole-file
// read-modify-write with linear scans. It is selected at startup when no
// relational connection is configured (or its initialization fails) and serves
// the exact same repository ports as the PostgreSQL backend.
package jsondb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection file names inside the data directory.
const (
	invoicesFile = "invoices.json"
	settingsFile = "settings.json"
	usersFile    = "users.json"
)

// Store owns the data directory and serializes writers. The original Node
// implementation relied on a single-threaded runtime; here requests run
// concurrently, so collection writes go through one mutex.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open ensures the data directory exists and returns the store.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsondb: create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory path (health endpoint reporting).
func (s *Store) Dir() string { return s.dir }

// read unmarshals a collection file into out. A missing file is an empty
// collection, not an error.
func (s *Store) read(file string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("jsondb: read %s: %w", file, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("jsondb: decode %s: %w", file, err)
	}
	return nil
}

// write replaces a collection file with the pretty-printed value.
func (s *Store) write(file string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsondb: encode %s: %w", file, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, file), data, 0o644); err != nil {
		return fmt.Errorf("jsondb: write %s: %w", file, err)
	}
	return nil
}
