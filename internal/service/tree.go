package service

import (
	"context"
	"log/slog"
	"time"

	"fruitstars/internal/domain/models"
	"fruitstars/internal/domain/repositories"
	"fruitstars/internal/labels"
	"fruitstars/internal/tree"
)

// TreeService exposes the folder-tree engine to the HTTP layer: it validates
// requests, applies mutations through the store, and writes snapshots
// through to the configured repository.
type TreeService struct {
	store   *tree.Store
	repo    repositories.TreeRepository
	catalog *labels.Catalog
	logger  *slog.Logger
	now     func() time.Time
}

// NewTreeService creates a tree service.
func NewTreeService(
	store *tree.Store,
	repo repositories.TreeRepository,
	catalog *labels.Catalog,
	logger *slog.Logger,
) *TreeService {
	return &TreeService{
		store:   store,
		repo:    repo,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// persist writes the current snapshot through to the repository. The engine
// is memory-first: a persistence failure is logged but does not undo the
// applied mutation or fail the request.
func (s *TreeService) persist(ctx context.Context) {
	if err := s.repo.SaveTree(ctx, s.store.Snapshot()); err != nil {
		s.logger.Error("failed to persist tree snapshot", "error", err)
	}
}

// Tree returns the current full tree snapshot.
func (s *TreeService) Tree() *models.Folder {
	return s.store.Snapshot()
}

// Breadcrumb is one step of a folder's ancestor chain.
type Breadcrumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FolderDetail is a folder together with its breadcrumb path from the root.
type FolderDetail struct {
	Folder *models.Folder `json:"folder"`
	Path   []Breadcrumb   `json:"path"`
}

// GetFolder returns a folder with its root-to-target breadcrumb path.
func (s *TreeService) GetFolder(id string) (*FolderDetail, error) {
	root := s.store.Snapshot()
	chain := tree.PathTo(root, id)
	if chain == nil {
		return nil, notFoundFolder(id)
	}
	path := make([]Breadcrumb, len(chain))
	for i, f := range chain {
		path[i] = Breadcrumb{ID: f.ID, Name: f.Name}
	}
	return &FolderDetail{Folder: chain[len(chain)-1], Path: path}, nil
}

// FolderLabels returns the derived set of labels present on a folder's
// uploaded files, used for dossier status display.
func (s *TreeService) FolderLabels(id string) ([]models.Label, error) {
	root := s.store.Snapshot()
	folder := tree.FindFolderByID(root, id)
	if folder == nil {
		return nil, notFoundFolder(id)
	}
	return tree.FolderLabels(folder), nil
}

// MoveDestinations returns every folder a file can be moved into, as id→path
// pairs with the root excluded.
func (s *TreeService) MoveDestinations() []tree.FolderPath {
	root := s.store.Snapshot()
	projection := tree.Projection(root)
	dests := make([]tree.FolderPath, 0, len(projection))
	for _, p := range projection {
		if p.ID == root.ID {
			continue
		}
		dests = append(dests, p)
	}
	return dests
}

// Search runs a tree-wide, case-insensitive name search.
func (s *TreeService) Search(query string) []tree.SearchResult {
	return tree.Search(s.store.Snapshot(), query)
}

// ExpiringFiles returns files whose expiration date falls within the window.
func (s *TreeService) ExpiringFiles(days int) ([]tree.ExpiringFile, error) {
	window, err := ExpiryWindow(days)
	if err != nil {
		return nil, err
	}
	return tree.ExpiringFiles(s.store.Snapshot(), window, s.now()), nil
}

// Labels returns the fixed label catalog.
func (s *TreeService) Labels() []models.Label {
	return s.catalog.All()
}

// CreateFolder creates a folder under the requested parent.
func (s *TreeService) CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	folder, err := s.store.AddFolder(req.ParentID, &models.Folder{
		Name:            req.Name,
		Kind:            req.Kind,
		ClientID:        req.ClientID,
		SupplierID:      req.SupplierID,
		ProductIDs:      req.ProductIDs,
		InvoiceNumber:   req.InvoiceNumber,
		BatchNumber:     req.BatchNumber,
		ContainerNumber: req.ContainerNumber,
		ShippingLine:    req.ShippingLine,
		Vessel:          req.Vessel,
		OrderReference:  req.OrderReference,
		DestinationPort: req.DestinationPort,
	})
	if err != nil {
		return nil, err
	}
	s.persist(ctx)

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"kind", folder.Kind,
		"parent_id", req.ParentID,
	)
	return folder, nil
}

// UpdateFolder applies a partial update to a folder.
func (s *TreeService) UpdateFolder(ctx context.Context, id string, req *UpdateFolderRequest) (*models.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	folder, err := s.store.UpdateFolder(id, tree.FolderUpdate{
		Name:            req.Name,
		Kind:            req.Kind,
		ClientID:        req.ClientID,
		SupplierID:      req.SupplierID,
		ProductIDs:      req.ProductIDs,
		InvoiceNumber:   req.InvoiceNumber,
		BatchNumber:     req.BatchNumber,
		ContainerNumber: req.ContainerNumber,
		ShippingLine:    req.ShippingLine,
		Vessel:          req.Vessel,
		OrderReference:  req.OrderReference,
		DestinationPort: req.DestinationPort,
	})
	if err != nil {
		return nil, err
	}
	s.persist(ctx)

	s.logger.Info("folder updated",
		"id", folder.ID,
		"name", folder.Name,
	)
	return folder, nil
}

// DeleteFolder removes a folder and its entire subtree.
func (s *TreeService) DeleteFolder(ctx context.Context, id string) error {
	if err := s.store.DeleteFolder(id); err != nil {
		return err
	}
	s.persist(ctx)

	s.logger.Info("folder deleted", "id", id)
	return nil
}

// AddFile adds file metadata to a folder. Requested labels are resolved
// against the catalog before the mutation runs, so an unknown label id fails
// the whole request without touching the tree.
func (s *TreeService) AddFile(ctx context.Context, req *AddFileRequest) (*models.File, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fileLabels := make([]models.Label, 0, len(req.LabelIDs))
	for _, id := range req.LabelIDs {
		label, err := s.catalog.Get(id)
		if err != nil {
			return nil, err
		}
		fileLabels = append(fileLabels, label)
	}

	file, err := s.store.AddFile(req.FolderID, &models.File{
		Name:           req.Name,
		Type:           req.Type,
		Size:           req.Size,
		ExpirationDate: req.ExpirationDate,
		InvoiceNumber:  req.InvoiceNumber,
		Labels:         fileLabels,
	})
	if err != nil {
		return nil, err
	}
	s.persist(ctx)

	s.logger.Info("file added",
		"id", file.ID,
		"name", file.Name,
		"type", file.Type,
		"folder_id", req.FolderID,
	)
	return file, nil
}

// DeleteFile removes a file from its parent folder.
func (s *TreeService) DeleteFile(ctx context.Context, id string) error {
	if err := s.store.DeleteFile(id); err != nil {
		return err
	}
	s.persist(ctx)

	s.logger.Info("file deleted", "id", id)
	return nil
}

// MoveFile relocates a file into the target folder.
func (s *TreeService) MoveFile(ctx context.Context, fileID string, req *MoveFileRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.store.MoveFile(fileID, req.TargetFolderID); err != nil {
		return err
	}
	s.persist(ctx)

	s.logger.Info("file moved",
		"id", fileID,
		"target_folder_id", req.TargetFolderID,
	)
	return nil
}

// AddLabel attaches a catalog label to a file, idempotently.
func (s *TreeService) AddLabel(ctx context.Context, fileID string, req *AddLabelRequest) (*models.File, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	label, err := s.catalog.Get(req.LabelID)
	if err != nil {
		return nil, err
	}

	file, err := s.store.AddLabelToFile(fileID, label)
	if err != nil {
		return nil, err
	}
	s.persist(ctx)

	s.logger.Info("label added",
		"file_id", fileID,
		"label_id", label.ID,
	)
	return file, nil
}
