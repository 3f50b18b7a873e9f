package tree

import (
	"testing"
)

func TestSearch(t *testing.T) {
	root := testTree()

	tests := []struct {
		name       string
		query      string
		wantCount  int
		wantPath   string
		wantFolder bool
	}{
		{
			name:      "empty query yields nothing",
			query:     "",
			wantCount: 0,
		},
		{
			name:       "folder hit path excludes the folder itself",
			query:      "container",
			wantCount:  1,
			wantPath:   "Shipments",
			wantFolder: true,
		},
		{
			name:      "file hit path includes parent folder",
			query:     "invoice",
			wantCount: 1,
			wantPath:  "Shipments > Container > INV-1",
		},
		{
			name:      "case insensitive",
			query:     "CLIENT",
			wantCount: 2, // Clients folder and Client A folder
		},
		{
			name:      "no match",
			query:     "zebra",
			wantCount: 0,
		},
		{
			name:      "root name never matches",
			query:     "dashboard",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(root, tt.query)
			if results == nil {
				t.Fatal("results must be an empty slice, never nil")
			}
			if len(results) != tt.wantCount {
				t.Fatalf("got %d results, want %d", len(results), tt.wantCount)
			}
			if tt.wantCount != 1 {
				return
			}
			r := results[0]
			if r.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", r.Path, tt.wantPath)
			}
			if tt.wantFolder && r.Folder == nil {
				t.Error("expected a folder hit")
			}
			if !tt.wantFolder && r.File == nil {
				t.Error("expected a file hit")
			}
		})
	}
}

func TestSearchTraversalOrder(t *testing.T) {
	root := testTree()

	// "client" matches the Clients folder before Client A, pre-order
	results := Search(root, "client")
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Folder == nil || results[0].Folder.ID != ClientsFolderID {
		t.Errorf("first hit = %+v, want Clients folder", results[0])
	}
	if results[1].Folder == nil || results[1].Folder.ID != "f1-1" {
		t.Errorf("second hit = %+v, want Client A folder", results[1])
	}
}
