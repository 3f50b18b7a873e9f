package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
	"fruitstars/internal/domain/repositories"
	"fruitstars/internal/labels"
	"fruitstars/internal/repository/memory"
	"fruitstars/internal/seed"
	"fruitstars/internal/tree"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) (*TreeService, repositories.TreeRepository) {
	t.Helper()
	// The seed clock matches the service clock so the seeded certificate's
	// 15-day expiry lands inside the default warning window
	store := tree.NewStore(seed.DefaultTree(time.Now()))
	repo := memory.NewTreeRepository()
	return NewTreeService(store, repo, labels.Default(), testLogger()), repo
}

func TestCreateFolder(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	folder, err := svc.CreateFolder(ctx, &CreateFolderRequest{
		ParentID: tree.ClientsFolderID,
		Name:     "Client B",
	})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if folder.Kind != models.FolderKindGeneric {
		t.Errorf("kind = %s, want generic default", folder.Kind)
	}

	// The mutation is written through to the repository
	saved, err := repo.LoadTree(ctx)
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	if tree.FindFolderByID(saved, folder.ID) == nil {
		t.Error("created folder not persisted")
	}
}

func TestCreateFolderValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *CreateFolderRequest
	}{
		{name: "missing parent", req: &CreateFolderRequest{Name: "X"}},
		{name: "missing name", req: &CreateFolderRequest{ParentID: tree.ClientsFolderID}},
		{name: "bad kind", req: &CreateFolderRequest{ParentID: tree.ClientsFolderID, Name: "X", Kind: "weird"}},
		{name: "separator in name", req: &CreateFolderRequest{ParentID: tree.ClientsFolderID, Name: "a > b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateFolder(ctx, tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestCreateFolderMissingParent(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateFolder(context.Background(), &CreateFolderRequest{
		ParentID: "f99",
		Name:     "Orphan",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestUpdateFolderRequiresAField(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateFolder(context.Background(), "f1-1", &UpdateFolderRequest{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestAddFileUnknownLabelLeavesTreeUntouched(t *testing.T) {
	svc, _ := newTestService(t)
	before := svc.Tree().FileCount()

	_, err := svc.AddFile(context.Background(), &AddFileRequest{
		FolderID: "f3-1-1",
		Name:     "Invoice.pdf",
		Type:     models.FileTypePDF,
		LabelIDs: []string{"l-x-99"},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	if svc.Tree().FileCount() != before {
		t.Error("failed add changed the tree")
	}
}

func TestAddFileWithLabels(t *testing.T) {
	svc, _ := newTestService(t)

	file, err := svc.AddFile(context.Background(), &AddFileRequest{
		FolderID:       "f3-1-1",
		Name:           "Bill of loading.pdf",
		Type:           models.FileTypePDF,
		ExpirationDate: "2024-12-01",
		LabelIDs:       []string{"l-sh-c-2"},
	})
	if err != nil {
		t.Fatalf("AddFile: %v", err)
	}
	if len(file.Labels) != 1 || file.Labels[0].Name != "Bill of Loading" {
		t.Errorf("labels = %v", file.Labels)
	}
	if file.ID == "" || file.PreviewURL == "" {
		t.Error("generated fields not filled")
	}
}

func TestAddLabelIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Seed certificate already carries l-s-5
	file, err := svc.AddLabel(ctx, "file-exp-1", &AddLabelRequest{LabelID: "l-s-5"})
	if err != nil {
		t.Fatalf("AddLabel: %v", err)
	}
	if len(file.Labels) != 1 {
		t.Errorf("got %d labels, want 1", len(file.Labels))
	}

	file, err = svc.AddLabel(ctx, "file-exp-1", &AddLabelRequest{LabelID: "l-s-7"})
	if err != nil {
		t.Fatalf("AddLabel: %v", err)
	}
	if len(file.Labels) != 2 {
		t.Errorf("got %d labels, want 2", len(file.Labels))
	}
}

func TestMoveFileThroughService(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if err := svc.MoveFile(ctx, "file-exp-1", &MoveFileRequest{TargetFolderID: "f3-1-1"}); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}

	saved, _ := repo.LoadTree(ctx)
	parent := tree.FindParentOfFile(saved, "file-exp-1")
	if parent == nil || parent.ID != "f3-1-1" {
		t.Errorf("persisted parent = %v, want f3-1-1", parent)
	}
}

func TestGetFolderBreadcrumb(t *testing.T) {
	svc, _ := newTestService(t)

	detail, err := svc.GetFolder("f3-1-1")
	if err != nil {
		t.Fatalf("GetFolder: %v", err)
	}
	wantNames := []string{"Dashboard", "Shipments", "Container", "26525 / 200"}
	if len(detail.Path) != len(wantNames) {
		t.Fatalf("breadcrumb length = %d, want %d", len(detail.Path), len(wantNames))
	}
	for i, want := range wantNames {
		if detail.Path[i].Name != want {
			t.Errorf("path[%d] = %q, want %q", i, detail.Path[i].Name, want)
		}
	}

	if _, err := svc.GetFolder("f99"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestMoveDestinationsExcludesRoot(t *testing.T) {
	svc, _ := newTestService(t)

	for _, d := range svc.MoveDestinations() {
		if d.ID == tree.RootFolderID {
			t.Fatal("destinations contain the root")
		}
	}
}

func TestExpiringFilesDefaultWindow(t *testing.T) {
	svc, _ := newTestService(t)

	// Seed certificate expires 15 days after the seed clock; with the service
	// clock close to it the default 28-day window catches it
	files, err := svc.ExpiringFiles(0)
	if err != nil {
		t.Fatalf("ExpiringFiles: %v", err)
	}
	found := false
	for _, f := range files {
		if f.File.ID == "file-exp-1" {
			found = true
			if f.Path != "Suppliers > Supplier X" {
				t.Errorf("path = %q", f.Path)
			}
		}
	}
	if !found {
		t.Error("seed certificate not in default expiry window")
	}
}

func TestExpiringFilesRejectsBadWindow(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.ExpiringFiles(-1); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want validation error", err)
	}
	if _, err := svc.ExpiringFiles(100000); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestSearchThroughService(t *testing.T) {
	svc, _ := newTestService(t)

	results := svc.Search("globalgap")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Path != "Suppliers > Supplier X" {
		t.Errorf("path = %q", results[0].Path)
	}

	if got := svc.Search(""); len(got) != 0 {
		t.Errorf("empty query returned %d results", len(got))
	}
}
