package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fruitstars/internal/domain/models"
)

// LoadTree reads a full tree definition from a YAML file. The file must
// contain a single root folder; folders and files keep the same field names
// as the JSON API.
func LoadTree(path string) (*models.Folder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed tree: %w", err)
	}

	var root models.Folder
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse seed tree: %w", err)
	}
	if root.ID == "" {
		return nil, fmt.Errorf("seed tree %s: root folder has no id", path)
	}
	if root.Kind == "" {
		root.Kind = models.FolderKindRoot
	}
	normalize(&root)
	return &root, nil
}

// normalize fills nil child slices so serialized trees always carry explicit
// empty lists, matching what the store produces.
func normalize(folder *models.Folder) {
	if folder.SubFolders == nil {
		folder.SubFolders = []*models.Folder{}
	}
	if folder.Files == nil {
		folder.Files = []*models.File{}
	}
	for _, f := range folder.Files {
		if f.Labels == nil {
			f.Labels = []models.Label{}
		}
	}
	for _, sub := range folder.SubFolders {
		if sub.Kind == "" {
			sub.Kind = models.FolderKindGeneric
		}
		normalize(sub)
	}
}
