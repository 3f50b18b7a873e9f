package tree

import (
	"strings"

	"fruitstars/internal/domain/models"
)

// SearchResult is a single search hit. Exactly one of Folder or File is set.
// Path is the ">"-joined chain of ancestor folder names with the root
// excluded: for a file it includes the file's parent folder, for a folder it
// is the chain above the folder (the folder itself excluded).
type SearchResult struct {
	Folder *models.Folder `json:"folder,omitempty"`
	File   *models.File   `json:"file,omitempty"`
	Path   string         `json:"path"`
}

// Search walks the whole tree in pre-order and returns every folder (root
// excluded) and file whose name contains the query, case-insensitively.
// An empty query yields no results, not a match-everything. Results preserve
// traversal order; there is no ranking.
func Search(root *models.Folder, query string) []SearchResult {
	results := []SearchResult{}
	if root == nil || query == "" {
		return results
	}
	needle := strings.ToLower(query)

	var walk func(folder *models.Folder, prefix string)
	walk = func(folder *models.Folder, prefix string) {
		currentPath := prefix
		if folder.ID != root.ID {
			if prefix == "" {
				currentPath = folder.Name
			} else {
				currentPath = prefix + PathSeparator + folder.Name
			}
			if strings.Contains(strings.ToLower(folder.Name), needle) {
				results = append(results, SearchResult{Folder: folder, Path: prefix})
			}
		}

		for _, file := range folder.Files {
			if strings.Contains(strings.ToLower(file.Name), needle) {
				results = append(results, SearchResult{File: file, Path: currentPath})
			}
		}

		for _, sub := range folder.SubFolders {
			walk(sub, currentPath)
		}
	}

	walk(root, "")
	return results
}
