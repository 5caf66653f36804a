// Package file implements the snapshot persistence backend on the local
// filesystem, storing the full application state as one JSON document.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wbrmagalhaes/jackut-api/internal/store"
)

// SnapshotStore writes snapshots to a single JSON file. Writes go through a
// temp file plus rename so a crash mid-write never leaves a torn snapshot.
type SnapshotStore struct {
	path string
}

// Ensure SnapshotStore implements store.Snapshotter.
var _ store.Snapshotter = (*SnapshotStore)(nil)

// NewSnapshotStore creates a file-backed snapshotter at the given path.
func NewSnapshotStore(path string) (*SnapshotStore, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot file path cannot be empty")
	}
	return &SnapshotStore{path: path}, nil
}

// Save implements store.Snapshotter.Save.
func (s *SnapshotStore) Save(_ context.Context, snap *store.Snapshot) error {
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".jackut-snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}

// Load implements store.Snapshotter.Load.
func (s *SnapshotStore) Load(_ context.Context) (*store.Snapshot, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file: %w", err)
	}
	return &snap, nil
}
