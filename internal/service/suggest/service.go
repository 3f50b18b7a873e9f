package suggest

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"fruitstars/internal/config"
	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
	"fruitstars/internal/labels"
	"fruitstars/internal/tree"
)

// Request asks for a placement suggestion for a file about to be uploaded.
type Request struct {
	FileName string          `json:"file_name"`
	FileType models.FileType `json:"file_type"`
}

// Validate checks the request fields.
func (r *Request) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.FileName, validation.Required, validation.Length(1, config.MaxFileNameLength)),
		validation.Field(&r.FileType, validation.Required, validation.In(
			models.FileTypeImage, models.FileTypePDF, models.FileTypeDocument,
		)),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

// Suggestion is a validated placement answer. Either field may be empty when
// the provider's pick did not survive validation against live state.
type Suggestion struct {
	SuggestedFolderID string        `json:"suggested_folder_id,omitempty"`
	SuggestedLabel    *models.Label `json:"suggested_label,omitempty"`
}

// Service wraps a placement provider with context assembly and result
// validation.
type Service struct {
	provider Provider
	catalog  *labels.Catalog
	logger   *slog.Logger
}

// NewService creates a suggestion service.
func NewService(provider Provider, catalog *labels.Catalog, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		catalog:  catalog,
		logger:   logger,
	}
}

// Suggest assembles the provider context from the given tree snapshot, asks
// the provider, and validates the returned ids: an unknown folder id is
// dropped, an unknown label id is dropped. The tree is never touched here -
// the caller feeds accepted suggestions through the normal mutation path.
func (s *Service) Suggest(ctx context.Context, root *models.Folder, req *Request) (*Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pc := &PlacementContext{
		FileName: req.FileName,
		FileType: req.FileType,
		Folders:  tree.Projection(root),
		Labels:   s.catalog.All(),
	}

	placement, err := s.provider.SuggestPlacement(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("placement suggestion failed: %w", err)
	}

	suggestion := &Suggestion{}
	if placement.FolderID != "" {
		if tree.FindFolderByID(root, placement.FolderID) != nil {
			suggestion.SuggestedFolderID = placement.FolderID
		} else {
			s.logger.Warn("provider suggested unknown folder",
				"folder_id", placement.FolderID,
				"file_name", req.FileName,
			)
		}
	}
	if placement.LabelID != "" {
		if label, err := s.catalog.Get(placement.LabelID); err == nil {
			suggestion.SuggestedLabel = &label
		} else {
			s.logger.Warn("provider suggested unknown label",
				"label_id", placement.LabelID,
				"file_name", req.FileName,
			)
		}
	}

	return suggestion, nil
}
