// Package localrecord implements the durable local record: a single
// JSON-serializable object stored under a fixed, well-known key, replaced
// wholesale on every write and removed wholesale on clear. It is the
// device-local equivalent of browser localStorage and carries no
// versioning or migration scheme.
package localrecord

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the persistence boundary of the session store. Keeping it an
// interface leaves the state-transition logic testable without touching
// the filesystem.
type Store interface {
	// Load reads the record stored under key into v. Returns false when no
	// record exists.
	Load(key string, v interface{}) (bool, error)

	// Save replaces the record stored under key.
	Save(key string, v interface{}) error

	// Remove deletes the record stored under key. Removing an absent key
	// is not an error.
	Remove(key string) error
}

// FileStore persists each record as <dir>/<key>.json.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, v interface{}) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read record %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode record %s: %w", key, err)
	}
	return true, nil
}

func (s *FileStore) Save(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}

	// Write-then-rename so a crash mid-write never leaves a truncated record.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write record %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replace record %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Remove(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove record %s: %w", key, err)
	}
	return nil
}
