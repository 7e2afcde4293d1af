// internal/adapters/file/snapshot_store.go
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dlamere/shopkeeper/internal/core/domain"
	"github.com/dlamere/shopkeeper/internal/core/ports"
)

// SnapshotStore persists the aggregate snapshot as a single JSON document with
// four top-level keyed collections: products, customers, invoices, users.
// Timestamps serialize as RFC 3339 and discount rules keep their variant tag.
type SnapshotStore struct {
	path   string
	logger *slog.Logger
}

// Statically assert that *SnapshotStore implements the SnapshotStore port.
var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a store backed by the given file path.
func NewSnapshotStore(path string, logger *slog.Logger) *SnapshotStore {
	return &SnapshotStore{
		path:   path,
		logger: logger.With(slog.String("adapter", "snapshot_file")),
	}
}

// Load reads and decodes the snapshot. A missing file yields an empty
// snapshot (first run); anything malformed or unreadable is a
// PersistenceError, which callers treat as fatal at startup.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.InfoContext(ctx, "no snapshot file, starting empty",
			slog.String("path", s.path))
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load", Err: err}
	}

	snapshot := &domain.Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, &domain.PersistenceError{Op: "load", Err: err}
	}
	snapshot.Normalize()

	s.logger.InfoContext(ctx, "snapshot loaded",
		slog.String("path", s.path),
		slog.Int("products", len(snapshot.Products)),
		slog.Int("customers", len(snapshot.Customers)),
		slog.Int("invoices", len(snapshot.Invoices)))

	return snapshot, nil
}

// Save serializes the snapshot and writes it atomically: encode to a temp
// file in the same directory, then rename over the target. The temp file is
// removed on every failure path.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &domain.PersistenceError{Op: "save", Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &domain.PersistenceError{Op: "save", Err: fmt.Errorf("replace %s: %w", s.path, err)}
	}

	s.logger.InfoContext(ctx, "snapshot saved",
		slog.String("path", s.path),
		slog.Int("bytes", len(data)))

	return nil
}
