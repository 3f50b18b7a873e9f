// Package memory is the default TreeRepository: snapshots are held in
// process memory only, matching the mock-backend deployment where the tree
// lives for the lifetime of the server.
package memory

import (
	"context"
	"fmt"
	"sync"

	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
	"fruitstars/internal/domain/repositories"
)

// TreeRepository keeps the latest saved snapshot in memory.
type TreeRepository struct {
	mu   sync.RWMutex
	root *models.Folder
}

// NewTreeRepository creates an empty in-memory repository.
func NewTreeRepository() repositories.TreeRepository {
	return &TreeRepository{}
}

// LoadTree returns the last saved snapshot.
func (r *TreeRepository) LoadTree(ctx context.Context) (*models.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.root == nil {
		return nil, fmt.Errorf("no tree persisted: %w", domain.ErrNotFound)
	}
	return r.root, nil
}

// SaveTree stores the snapshot. Snapshots are immutable by store discipline,
// so the reference is kept as-is.
func (r *TreeRepository) SaveTree(ctx context.Context, root *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.root = root
	return nil
}
