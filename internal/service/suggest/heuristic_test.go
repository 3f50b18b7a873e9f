package suggest

import (
	"context"
	"testing"

	"fruitstars/internal/domain/models"
	"fruitstars/internal/labels"
	"fruitstars/internal/tree"
)

func testContext(fileName string) *PlacementContext {
	return &PlacementContext{
		FileName: fileName,
		FileType: models.FileTypePDF,
		Folders: []tree.FolderPath{
			{ID: "root", Path: "Dashboard"},
			{ID: "f1", Path: "Dashboard > Clients"},
			{ID: "f2-1", Path: "Dashboard > Suppliers > Supplier X"},
			{ID: "f3-1-1", Path: "Dashboard > Shipments > Container > 26525 / 200"},
		},
		Labels: labels.Default().All(),
	}
}

func TestHeuristicProvider(t *testing.T) {
	provider := NewHeuristicProvider()

	tests := []struct {
		name       string
		fileName   string
		wantFolder string
		wantLabel  string
	}{
		{
			name:       "supplier certificate",
			fileName:   "Suppliers GlobalGap Cert.pdf",
			wantFolder: "f2-1",
			wantLabel:  "l-s-5",
		},
		{
			name:       "shipment invoice",
			fileName:   "Sales invoice 26525.pdf",
			wantFolder: "f3-1-1",
			wantLabel:  "l-sh-c-13",
		},
		{
			name:      "nothing matches falls back to Other",
			fileName:  "zzz.bin",
			wantLabel: labels.OtherLabelID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placement, err := provider.SuggestPlacement(context.Background(), testContext(tt.fileName))
			if err != nil {
				t.Fatalf("SuggestPlacement: %v", err)
			}
			if placement.FolderID != tt.wantFolder {
				t.Errorf("folder = %q, want %q", placement.FolderID, tt.wantFolder)
			}
			if placement.LabelID != tt.wantLabel {
				t.Errorf("label = %q, want %q", placement.LabelID, tt.wantLabel)
			}
		})
	}
}

func TestHeuristicProviderDeterministic(t *testing.T) {
	provider := NewHeuristicProvider()
	ctx := context.Background()

	first, err := provider.SuggestPlacement(ctx, testContext("Packinglist 26525.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := provider.SuggestPlacement(ctx, testContext("Packinglist 26525.pdf"))
		if err != nil {
			t.Fatal(err)
		}
		if *again != *first {
			t.Fatalf("run %d gave %+v, first gave %+v", i, again, first)
		}
	}
}
