package transmit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ghostworks/ghostd/pkg/models"
)

// maxPersistedBatches caps the durable failed-batch queue; only the newest
// batches are kept.
const maxPersistedBatches = 10

// BatchStore persists failed batches across process restarts.
type BatchStore interface {
	Save(batches []models.SecureEventBatch) error
	Load() ([]models.SecureEventBatch, error)
	Clear() error
}

// FileStore is a JSON-file BatchStore for the device-side transmitter.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path, creating parent directories.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create batch store directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Save writes the newest batches (cap 10) atomically via rename.
func (s *FileStore) Save(batches []models.SecureEventBatch) error {
	if len(batches) > maxPersistedBatches {
		batches = batches[len(batches)-maxPersistedBatches:]
	}
	data, err := json.Marshal(batches)
	if err != nil {
		return fmt.Errorf("failed to marshal failed batches: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write batch store: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// Load reads persisted batches; a missing file yields an empty queue.
func (s *FileStore) Load() ([]models.SecureEventBatch, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read batch store: %w", err)
	}
	var batches []models.SecureEventBatch
	if err := json.Unmarshal(data, &batches); err != nil {
		return nil, fmt.Errorf("failed to decode batch store: %w", err)
	}
	return batches, nil
}

// Clear removes the persisted queue.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
