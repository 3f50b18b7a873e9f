package tree

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
)

// Store owns the canonical tree snapshot and applies mutations under
// copy-on-write discipline: every mutation deep-clones the current tree,
// edits the clone, and swaps the snapshot reference. Readers always see a
// complete, never-mutated snapshot. Mutations are serialized by a mutex so
// two writers can never race on the same base snapshot.
type Store struct {
	mu   sync.RWMutex
	root *models.Folder

	newID func(prefix string) string
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides node id generation. The generator receives the
// node kind prefix ("folder" or "file").
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithClock overrides the time source used for file modification dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a store seeded with the given initial tree. The initial
// state is cloned so the caller's reference never aliases the canonical
// snapshot. Independent stores (one per test, per tenant) can coexist.
func NewStore(initial *models.Folder, opts ...Option) *Store {
	s := &Store{
		root: initial.Clone(),
		newID: func(prefix string) string {
			return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current tree. The returned tree is shared with other
// readers and must be treated as immutable.
func (s *Store) Snapshot() *models.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// apply clones the current tree, runs mutate against the clone, and installs
// the clone as the new snapshot if mutate succeeds. On error the original
// snapshot stays in place, so every mutation is all-or-nothing.
func (s *Store) apply(mutate func(next *models.Folder) error) (*models.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.root.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	s.root = next
	return next, nil
}

// AddLabelToFile attaches a catalog label to a file. Adding a label the file
// already carries (by label id) is an idempotent success. Returns the file
// as it appears in the new snapshot.
func (s *Store) AddLabelToFile(fileID string, label models.Label) (*models.File, error) {
	var updated *models.File
	_, err := s.apply(func(next *models.Folder) error {
		file := FindFileByID(next, fileID)
		if file == nil {
			return &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", fileID)}
		}
		if !file.HasLabel(label.ID) {
			file.Labels = append(file.Labels, label)
		}
		updated = file
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MoveFile relocates a file into the target folder, preserving the file
// itself. The target is validated before the source is touched, so a bad
// target id can never drop the file.
func (s *Store) MoveFile(fileID, targetFolderID string) error {
	_, err := s.apply(func(next *models.Folder) error {
		target := FindFolderByID(next, targetFolderID)
		if target == nil {
			return &domain.NotFoundError{Message: fmt.Sprintf("target folder %s not found", targetFolderID)}
		}
		source := FindParentOfFile(next, fileID)
		if source == nil {
			return &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", fileID)}
		}

		var moved *models.File
		for i, f := range source.Files {
			if f.ID == fileID {
				moved = f
				source.Files = append(source.Files[:i], source.Files[i+1:]...)
				break
			}
		}
		target.Files = append(target.Files, moved)
		return nil
	})
	return err
}

// AddFile appends a new file to the target folder. The store fills in the
// generated id, the formatted current date and a placeholder preview URL
// when the caller leaves them empty.
func (s *Store) AddFile(targetFolderID string, file *models.File) (*models.File, error) {
	var created *models.File
	_, err := s.apply(func(next *models.Folder) error {
		target := FindFolderByID(next, targetFolderID)
		if target == nil {
			return &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", targetFolderID)}
		}

		f := file.Clone()
		if f.ID == "" {
			f.ID = s.newID("file")
		}
		if f.LastModified == "" {
			f.LastModified = s.now().Format("2006-01-02")
		}
		if f.PreviewURL == "" {
			f.PreviewURL = fmt.Sprintf("https://picsum.photos/seed/%s/400/300", f.ID)
		}
		if f.Labels == nil {
			f.Labels = []models.Label{}
		}

		target.Files = append(target.Files, f)
		created = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteFile removes a file from its parent folder's file list.
func (s *Store) DeleteFile(fileID string) error {
	_, err := s.apply(func(next *models.Folder) error {
		parent := FindParentOfFile(next, fileID)
		if parent == nil {
			return &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", fileID)}
		}
		for i, f := range parent.Files {
			if f.ID == fileID {
				parent.Files = append(parent.Files[:i], parent.Files[i+1:]...)
				break
			}
		}
		return nil
	})
	return err
}

// AddFolder creates a new folder under the given parent. Client, supplier
// and product references are resolved to display names at creation time,
// best-effort: an unknown reference leaves the name empty.
func (s *Store) AddFolder(parentID string, folder *models.Folder) (*models.Folder, error) {
	var created *models.Folder
	_, err := s.apply(func(next *models.Folder) error {
		parent := FindFolderByID(next, parentID)
		if parent == nil {
			return &domain.NotFoundError{Message: fmt.Sprintf("parent folder %s not found", parentID)}
		}

		f := folder.Clone()
		if f.ID == "" {
			f.ID = s.newID("folder")
		}
		if f.Kind == "" {
			f.Kind = models.FolderKindGeneric
		}
		f.Files = []*models.File{}
		f.SubFolders = []*models.Folder{}
		f.Collaborators = []models.Collaborator{}
		resolveReferences(next, f)

		parent.SubFolders = append(parent.SubFolders, f)
		created = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// FolderUpdate is a partial folder update. Nil fields are left untouched.
type FolderUpdate struct {
	Name            *string
	Kind            *models.FolderKind
	ClientID        *string
	SupplierID      *string
	ProductIDs      *[]string
	InvoiceNumber   *string
	BatchNumber     *string
	ContainerNumber *string
	ShippingLine    *string
	Vessel          *string
	OrderReference  *string
	DestinationPort *string
}

// UpdateFolder shallow-merges the update onto the folder. Whenever the
// client, supplier or product references change, the corresponding display
// names are re-resolved against the new snapshot.
func (s *Store) UpdateFolder(folderID string, upd FolderUpdate) (*models.Folder, error) {
	var updated *models.Folder
	_, err := s.apply(func(next *models.Folder) error {
		folder := FindFolderByID(next, folderID)
		if folder == nil {
			return &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", folderID)}
		}

		if upd.Name != nil {
			folder.Name = *upd.Name
		}
		if upd.Kind != nil {
			folder.Kind = *upd.Kind
		}
		if upd.InvoiceNumber != nil {
			folder.InvoiceNumber = *upd.InvoiceNumber
		}
		if upd.BatchNumber != nil {
			folder.BatchNumber = *upd.BatchNumber
		}
		if upd.ContainerNumber != nil {
			folder.ContainerNumber = *upd.ContainerNumber
		}
		if upd.ShippingLine != nil {
			folder.ShippingLine = *upd.ShippingLine
		}
		if upd.Vessel != nil {
			folder.Vessel = *upd.Vessel
		}
		if upd.OrderReference != nil {
			folder.OrderReference = *upd.OrderReference
		}
		if upd.DestinationPort != nil {
			folder.DestinationPort = *upd.DestinationPort
		}

		refsChanged := false
		if upd.ClientID != nil && *upd.ClientID != folder.ClientID {
			folder.ClientID = *upd.ClientID
			refsChanged = true
		}
		if upd.SupplierID != nil && *upd.SupplierID != folder.SupplierID {
			folder.SupplierID = *upd.SupplierID
			refsChanged = true
		}
		if upd.ProductIDs != nil {
			folder.ProductIDs = append([]string(nil), (*upd.ProductIDs)...)
			refsChanged = true
		}
		if refsChanged {
			resolveReferences(next, folder)
		}

		updated = folder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteFolder splices the folder out of its parent's subfolder list,
// discarding the entire subtree irrecoverably. The root cannot be deleted.
func (s *Store) DeleteFolder(folderID string) error {
	_, err := s.apply(func(next *models.Folder) error {
		if folderID == next.ID {
			return &domain.ValidationError{Message: "cannot delete the root folder"}
		}
		if !spliceFolder(next, folderID) {
			return &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", folderID)}
		}
		return nil
	})
	return err
}

// spliceFolder removes the folder with the given id from the subtree,
// checking each level's direct children before recursing.
func spliceFolder(folder *models.Folder, id string) bool {
	for i, sub := range folder.SubFolders {
		if sub.ID == id {
			folder.SubFolders = append(folder.SubFolders[:i], folder.SubFolders[i+1:]...)
			return true
		}
	}
	for _, sub := range folder.SubFolders {
		if spliceFolder(sub, id) {
			return true
		}
	}
	return false
}

// resolveReferences denormalizes client/supplier/product display names onto
// a dossier folder by looking up the referenced folders in the same tree.
// Products resolve against the direct children of the Products anchor.
// Resolution is best-effort: unknown references leave the name empty.
func resolveReferences(root, folder *models.Folder) {
	if folder.ClientID != "" {
		folder.ClientName = ""
		if client := FindFolderByID(root, folder.ClientID); client != nil {
			folder.ClientName = client.Name
		}
	}
	if folder.SupplierID != "" {
		folder.SupplierName = ""
		if supplier := FindFolderByID(root, folder.SupplierID); supplier != nil {
			folder.SupplierName = supplier.Name
		}
	}
	if len(folder.ProductIDs) > 0 {
		folder.ProductNames = nil
		products := FindFolderByID(root, ProductsFolderID)
		if products == nil {
			return
		}
		for _, id := range folder.ProductIDs {
			for _, p := range products.SubFolders {
				if p.ID == id {
					folder.ProductNames = append(folder.ProductNames, p.Name)
					break
				}
			}
		}
	}
}
