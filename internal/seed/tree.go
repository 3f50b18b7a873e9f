// Package seed builds the initial document tree the store is loaded with at
// process start, either the builtin Fruitstars structure or a YAML file.
package seed

import (
	"time"

	"fruitstars/internal/domain/models"
	"fruitstars/internal/labels"
	"fruitstars/internal/tree"
)

// DefaultTree returns the builtin initial structure: Dashboard root with the
// Clients, Suppliers, Products, Procedures and Shipments anchors, the
// Container/Residuals shipment categories, one example dossier, and one
// supplier certificate expiring 15 days from now.
func DefaultTree(now time.Time) *models.Folder {
	catalog := labels.Default()
	globalGap, _ := catalog.Get("l-s-5")

	return &models.Folder{
		ID:   tree.RootFolderID,
		Name: "Dashboard",
		Kind: models.FolderKindRoot,
		SubFolders: []*models.Folder{
			{
				ID:   tree.ClientsFolderID,
				Name: "Clients",
				Kind: models.FolderKindCategory,
				SubFolders: []*models.Folder{
					emptyFolder("f1-1", "Client A", models.FolderKindGeneric),
				},
				Files: []*models.File{},
			},
			{
				ID:   tree.SuppliersFolderID,
				Name: "Suppliers",
				Kind: models.FolderKindCategory,
				SubFolders: []*models.Folder{
					{
						ID:         "f2-1",
						Name:       "Supplier X",
						Kind:       models.FolderKindGeneric,
						SubFolders: []*models.Folder{},
						Files: []*models.File{
							{
								ID:             "file-exp-1",
								Name:           "GlobalGap Cert.pdf",
								Type:           models.FileTypePDF,
								Size:           "1.2 MB",
								LastModified:   "2023-10-15",
								Labels:         []models.Label{globalGap},
								PreviewURL:     "https://picsum.photos/seed/cert1/400/300",
								ExpirationDate: now.AddDate(0, 0, 15).Format("2006-01-02"),
							},
						},
					},
				},
				Files: []*models.File{},
			},
			{
				ID:   tree.ProductsFolderID,
				Name: "Products",
				Kind: models.FolderKindCategory,
				SubFolders: []*models.Folder{
					emptyFolder("f4-1", "Avocado", models.FolderKindGeneric),
				},
				Files: []*models.File{},
			},
			{
				ID:   tree.ProceduresFolderID,
				Name: "Procedures",
				Kind: models.FolderKindCategory,
				SubFolders: []*models.Folder{
					emptyFolder("f5-1", "Forms", models.FolderKindGeneric),
					emptyFolder("f5-2", "Lists", models.FolderKindGeneric),
					emptyFolder("f5-3", "Standard operating procedures", models.FolderKindGeneric),
					emptyFolder("f5-4", "Templates", models.FolderKindGeneric),
				},
				Files: []*models.File{},
			},
			{
				ID:   tree.ShipmentsFolderID,
				Name: "Shipments",
				Kind: models.FolderKindCategory,
				SubFolders: []*models.Folder{
					{
						ID:   tree.ContainerFolderID,
						Name: "Container",
						Kind: models.FolderKindCategory,
						SubFolders: []*models.Folder{
							{
								ID:            "f3-1-1",
								Name:          "26525 / 200",
								Kind:          models.FolderKindDossier,
								SubFolders:    []*models.Folder{},
								Files:         []*models.File{},
								ClientID:      "f1-1",
								ClientName:    "Client A",
								SupplierID:    "f2-1",
								SupplierName:  "Supplier X",
								InvoiceNumber: "26525",
								BatchNumber:   "200",
							},
						},
						Files: []*models.File{},
					},
					emptyFolder(tree.ResidualsFolderID, "Residuals", models.FolderKindCategory),
				},
				Files: []*models.File{},
			},
		},
		Files: []*models.File{},
	}
}

func emptyFolder(id, name string, kind models.FolderKind) *models.Folder {
	return &models.Folder{
		ID:         id,
		Name:       name,
		Kind:       kind,
		SubFolders: []*models.Folder{},
		Files:      []*models.File{},
	}
}
