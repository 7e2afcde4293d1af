// internal/core/ports/snapshot_store.go
package ports

import (
	"context"

	"github.com/dlamere/shopkeeper/internal/core/domain"
)

// SnapshotStore defines the persistence port for the aggregate snapshot.
// The whole state is loaded at startup and written back wholesale; there is
// no partial or incremental persistence.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snapshot *domain.Snapshot) error
}
