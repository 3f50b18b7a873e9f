package tree

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	counter := 0
	return NewStore(testTree(),
		WithIDGenerator(func(prefix string) string {
			counter++
			return fmt.Sprintf("%s-test-%d", prefix, counter)
		}),
		WithClock(func() time.Time {
			return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		}),
	)
}

func TestStoreSnapshotIsolation(t *testing.T) {
	initial := testTree()
	store := NewStore(initial)

	// Mutating the caller's tree must not leak into the store
	initial.Name = "hacked"
	if store.Snapshot().Name != "Dashboard" {
		t.Fatal("store aliases the initial tree")
	}

	// A snapshot taken before a mutation must not observe it
	before := store.Snapshot()
	if _, err := store.AddFolder(ClientsFolderID, &models.Folder{Name: "Client B"}); err != nil {
		t.Fatalf("AddFolder: %v", err)
	}
	if n := len(FindFolderByID(before, ClientsFolderID).SubFolders); n != 1 {
		t.Errorf("old snapshot changed after mutation, %d subfolders", n)
	}
	if n := len(FindFolderByID(store.Snapshot(), ClientsFolderID).SubFolders); n != 2 {
		t.Errorf("new snapshot missing the added folder, %d subfolders", n)
	}
}

func TestAddFolder(t *testing.T) {
	store := newTestStore(t)

	folder, err := store.AddFolder(ClientsFolderID, &models.Folder{Name: "Client B"})
	if err != nil {
		t.Fatalf("AddFolder: %v", err)
	}
	if folder.ID == "" {
		t.Error("folder id not generated")
	}
	if folder.Kind != models.FolderKindGeneric {
		t.Errorf("kind = %s, want generic default", folder.Kind)
	}
	if folder.SubFolders == nil || folder.Files == nil {
		t.Error("child slices must be initialized")
	}

	if FindFolderByID(store.Snapshot(), folder.ID) == nil {
		t.Error("folder not reachable in new snapshot")
	}
}

func TestAddFolderMissingParent(t *testing.T) {
	store := newTestStore(t)
	before := store.Snapshot()

	_, err := store.AddFolder("f9", &models.Folder{Name: "Orphan"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	if store.Snapshot() != before {
		t.Error("failed mutation must not swap the snapshot")
	}
}

func TestAddFolderResolvesReferences(t *testing.T) {
	store := NewStore(&models.Folder{
		ID:   RootFolderID,
		Name: "Dashboard",
		Kind: models.FolderKindRoot,
		SubFolders: []*models.Folder{
			{ID: ClientsFolderID, Name: "Clients", SubFolders: []*models.Folder{
				{ID: "f1-1", Name: "Client A"},
			}},
			{ID: ProductsFolderID, Name: "Products", SubFolders: []*models.Folder{
				{ID: "f4-1", Name: "Avocado"},
				{ID: "f4-2", Name: "Mango"},
			}},
			{ID: ShipmentsFolderID, Name: "Shipments"},
		},
	})

	folder, err := store.AddFolder(ShipmentsFolderID, &models.Folder{
		Name:       "26001 / 17",
		Kind:       models.FolderKindDossier,
		ClientID:   "f1-1",
		SupplierID: "missing-supplier",
		ProductIDs: []string{"f4-2", "f4-9"},
	})
	if err != nil {
		t.Fatalf("AddFolder: %v", err)
	}

	if folder.ClientName != "Client A" {
		t.Errorf("client name = %q, want Client A", folder.ClientName)
	}
	if folder.SupplierName != "" {
		t.Errorf("unknown supplier must resolve to empty, got %q", folder.SupplierName)
	}
	if len(folder.ProductNames) != 1 || folder.ProductNames[0] != "Mango" {
		t.Errorf("product names = %v, want [Mango]", folder.ProductNames)
	}
}

func TestUpdateFolder(t *testing.T) {
	store := newTestStore(t)

	name := "Renamed"
	invoice := "90000"
	folder, err := store.UpdateFolder("f3-1-1", FolderUpdate{Name: &name, InvoiceNumber: &invoice})
	if err != nil {
		t.Fatalf("UpdateFolder: %v", err)
	}
	if folder.Name != "Renamed" || folder.InvoiceNumber != "90000" {
		t.Errorf("got name=%q invoice=%q", folder.Name, folder.InvoiceNumber)
	}
	// Untouched fields survive
	if folder.Kind != models.FolderKindDossier {
		t.Errorf("kind changed to %s", folder.Kind)
	}

	_, err = store.UpdateFolder("f9", FolderUpdate{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestUpdateFolderReresolvesReferences(t *testing.T) {
	store := newTestStore(t)

	clientID := "f1-1"
	folder, err := store.UpdateFolder("f3-1-1", FolderUpdate{ClientID: &clientID})
	if err != nil {
		t.Fatalf("UpdateFolder: %v", err)
	}
	if folder.ClientName != "Client A" {
		t.Errorf("client name = %q, want Client A", folder.ClientName)
	}
}

func TestDeleteFolder(t *testing.T) {
	store := newTestStore(t)

	if err := store.DeleteFolder(ShipmentsFolderID); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}
	snap := store.Snapshot()
	if FindFolderByID(snap, ShipmentsFolderID) != nil {
		t.Error("deleted folder still reachable")
	}
	// The whole subtree goes with it
	if FindFolderByID(snap, "f3-1-1") != nil {
		t.Error("subtree survived the delete")
	}
	if FindFileByID(snap, "file-1") != nil {
		t.Error("file in deleted subtree still reachable")
	}
}

func TestDeleteFolderRoot(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteFolder(RootFolderID)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestDeleteFolderMissing(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteFolder("f9")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestAddFile(t *testing.T) {
	store := newTestStore(t)

	file, err := store.AddFile("f3-1-1", &models.File{
		Name: "Packing list.pdf",
		Type: models.FileTypePDF,
	})
	if err != nil {
		t.Fatalf("AddFile: %v", err)
	}
	if file.ID == "" {
		t.Error("file id not generated")
	}
	if file.LastModified != "2024-06-01" {
		t.Errorf("last modified = %q, want clock date", file.LastModified)
	}
	if file.PreviewURL == "" {
		t.Error("preview URL not filled")
	}
	if file.Labels == nil {
		t.Error("labels must be an empty slice, never nil")
	}

	parent := FindParentOfFile(store.Snapshot(), file.ID)
	if parent == nil || parent.ID != "f3-1-1" {
		t.Errorf("file parent = %v, want f3-1-1", parent)
	}
}

func TestAddFileMissingFolder(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddFile("f9", &models.File{Name: "x.pdf", Type: models.FileTypePDF})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestDeleteFile(t *testing.T) {
	store := newTestStore(t)

	if err := store.DeleteFile("file-1"); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if FindFileByID(store.Snapshot(), "file-1") != nil {
		t.Error("deleted file still reachable")
	}

	if err := store.DeleteFile("file-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete err = %v, want not found", err)
	}
}

func TestMoveFile(t *testing.T) {
	store := newTestStore(t)
	before := store.Snapshot().FileCount()

	if err := store.MoveFile("file-1", ClientsFolderID); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}

	snap := store.Snapshot()
	if snap.FileCount() != before {
		t.Errorf("file count changed: %d -> %d", before, snap.FileCount())
	}
	parent := FindParentOfFile(snap, "file-1")
	if parent == nil || parent.ID != ClientsFolderID {
		t.Errorf("file parent = %v, want Clients", parent)
	}
}

func TestMoveFileMissingTargetKeepsFile(t *testing.T) {
	store := newTestStore(t)

	err := store.MoveFile("file-1", "f9")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}

	// The target was validated before the source was touched
	parent := FindParentOfFile(store.Snapshot(), "file-1")
	if parent == nil || parent.ID != "f3-1-1" {
		t.Errorf("file parent = %v, want unchanged f3-1-1", parent)
	}
}

func TestMoveFileMissingFile(t *testing.T) {
	store := newTestStore(t)

	err := store.MoveFile("file-9", ClientsFolderID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestAddLabelToFile(t *testing.T) {
	store := newTestStore(t)
	label := models.Label{ID: "l-s-1", Name: "Invoice", Color: models.LabelColorBlue, Category: models.LabelCategoryShipment}

	file, err := store.AddLabelToFile("file-1", label)
	if err != nil {
		t.Fatalf("AddLabelToFile: %v", err)
	}
	if len(file.Labels) != 1 {
		t.Fatalf("got %d labels, want 1", len(file.Labels))
	}

	// Adding the same label again is an idempotent success
	file, err = store.AddLabelToFile("file-1", label)
	if err != nil {
		t.Fatalf("second AddLabelToFile: %v", err)
	}
	if len(file.Labels) != 1 {
		t.Errorf("got %d labels after duplicate add, want 1", len(file.Labels))
	}

	if _, err := store.AddLabelToFile("file-9", label); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}
