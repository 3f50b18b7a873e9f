package tree

import (
	"testing"
	"time"

	"fruitstars/internal/domain/models"
)

func TestFolderLabels(t *testing.T) {
	invoice := models.Label{ID: "l-s-1", Name: "Invoice", Category: models.LabelCategoryShipment}
	packing := models.Label{ID: "l-s-2", Name: "Packing list", Category: models.LabelCategoryShipment}
	other := models.Label{ID: "l-o-1", Name: "Other", Category: models.LabelCategoryGeneral}

	tests := []struct {
		name    string
		folder  *models.Folder
		wantIDs []string
	}{
		{
			name:    "no files",
			folder:  &models.Folder{ID: "f", Name: "Empty"},
			wantIDs: []string{},
		},
		{
			name: "dedup across files, first appearance order",
			folder: &models.Folder{
				ID: "f",
				Files: []*models.File{
					{ID: "a", Labels: []models.Label{invoice, other}},
					{ID: "b", Labels: []models.Label{invoice, packing}},
				},
			},
			wantIDs: []string{"l-s-1", "l-o-1", "l-s-2"},
		},
		{
			name: "subfolder files excluded",
			folder: &models.Folder{
				ID:    "f",
				Files: []*models.File{{ID: "a", Labels: []models.Label{invoice}}},
				SubFolders: []*models.Folder{
					{ID: "g", Files: []*models.File{{ID: "b", Labels: []models.Label{packing}}}},
				},
			},
			wantIDs: []string{"l-s-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FolderLabels(tt.folder)
			if got == nil {
				t.Fatal("result must be an empty slice, never nil")
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d labels, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("label[%d] = %s, want %s", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestExpiringFiles(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	root := &models.Folder{
		ID:   RootFolderID,
		Name: "Dashboard",
		SubFolders: []*models.Folder{
			{
				ID:   "f2",
				Name: "Suppliers",
				SubFolders: []*models.Folder{
					{
						ID:   "f2-1",
						Name: "Supplier X",
						Files: []*models.File{
							{ID: "soon", Name: "Cert A.pdf", ExpirationDate: "2024-06-10"},
							{ID: "sooner", Name: "Cert B.pdf", ExpirationDate: "2024-06-05"},
							{ID: "far", Name: "Cert C.pdf", ExpirationDate: "2024-12-01"},
							{ID: "past", Name: "Cert D.pdf", ExpirationDate: "2024-01-01"},
							{ID: "none", Name: "Cert E.pdf"},
							{ID: "bad", Name: "Cert F.pdf", ExpirationDate: "not-a-date"},
						},
					},
				},
			},
		},
	}

	got := ExpiringFiles(root, 28, now)
	if len(got) != 2 {
		t.Fatalf("got %d files, want 2", len(got))
	}
	// Sorted by expiration date ascending
	if got[0].File.ID != "sooner" || got[1].File.ID != "soon" {
		t.Errorf("order = [%s %s], want [sooner soon]", got[0].File.ID, got[1].File.ID)
	}
	if got[0].Path != "Suppliers > Supplier X" {
		t.Errorf("path = %q", got[0].Path)
	}
	if got[0].DaysLeft < 3 || got[0].DaysLeft > 4 {
		t.Errorf("days left = %d, want about 3", got[0].DaysLeft)
	}

	// A wider window picks up the December certificate
	if got := ExpiringFiles(root, 365, now); len(got) != 3 {
		t.Errorf("got %d files with 365-day window, want 3", len(got))
	}
}
