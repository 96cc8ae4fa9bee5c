package usage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the ledger record as a small JSON file. A missing or
// corrupt file is treated as absent state so the ledger can reinitialize it.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the record from disk.
func (s *FileStore) Load(_ context.Context) (Record, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, false, nil
		}
		return Record{}, false, fmt.Errorf("failed to read usage file %s: %w", s.path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		// Corrupt file: let the ledger start fresh rather than losing
		// every future call to a parse error.
		return Record{}, false, nil
	}
	return rec, true, nil
}

// Save writes the record to disk, creating parent directories as needed.
func (s *FileStore) Save(_ context.Context, rec Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create usage dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode usage record: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write usage file %s: %w", s.path, err)
	}
	return nil
}
