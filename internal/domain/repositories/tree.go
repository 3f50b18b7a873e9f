package repositories

import (
	"context"

	"fruitstars/internal/domain/models"
)

// TreeRepository persists tree snapshots. The engine stays memory-first:
// the store owns the canonical snapshot and writes it through to the
// repository after each applied mutation, so the persisted form is always a
// complete, consistent tree.
type TreeRepository interface {
	// LoadTree reconstructs the persisted tree. Returns domain.ErrNotFound
	// (wrapped) when nothing has been persisted yet.
	LoadTree(ctx context.Context) (*models.Folder, error)

	// SaveTree replaces the persisted tree with the given snapshot in one
	// atomic operation.
	SaveTree(ctx context.Context, root *models.Folder) error
}
