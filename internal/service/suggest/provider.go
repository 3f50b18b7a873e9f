// Package suggest implements the AI-assisted file-placement feature: given a
// file name and type plus a read-only projection of the current tree and the
// label catalog, a provider proposes a destination folder and a label. The
// returned ids are validated against live state before being surfaced, so a
// provider failure or hallucinated id can never corrupt the tree.
package suggest

import (
	"context"

	"fruitstars/internal/domain/models"
	"fruitstars/internal/tree"
)

// PlacementContext is the read-only context handed to a provider.
type PlacementContext struct {
	FileName string
	FileType models.FileType
	Folders  []tree.FolderPath
	Labels   []models.Label
}

// Placement is a provider's raw answer. Ids are unvalidated at this point.
type Placement struct {
	FolderID string `json:"suggested_folder_id"`
	LabelID  string `json:"suggested_label_id"`
}

// Provider proposes a placement for a new file.
type Provider interface {
	SuggestPlacement(ctx context.Context, pc *PlacementContext) (*Placement, error)
}
