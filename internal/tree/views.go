package tree

import (
	"sort"
	"time"

	"fruitstars/internal/domain/models"
)

// FolderLabels returns the set of labels present on a folder's direct files,
// deduplicated by label id in order of first appearance. This is the derived
// "uploaded file labels" view used for dossier status display; it is never
// stored on the folder.
func FolderLabels(folder *models.Folder) []models.Label {
	labels := []models.Label{}
	if folder == nil {
		return labels
	}
	seen := make(map[string]bool)
	for _, file := range folder.Files {
		for _, l := range file.Labels {
			if seen[l.ID] {
				continue
			}
			seen[l.ID] = true
			labels = append(labels, l)
		}
	}
	return labels
}

// ExpiringFile is a file whose expiration date falls within the dashboard's
// warning window, together with the display path of its parent folder.
type ExpiringFile struct {
	File     *models.File `json:"file"`
	Path     string       `json:"path"`
	DaysLeft int          `json:"days_left"`
}

// ExpiringFiles returns every file in the tree with an expiration date that
// is in the future and at most `days` days away, sorted by expiration date
// ascending. Files with absent or malformed dates are skipped.
func ExpiringFiles(root *models.Folder, days int, now time.Time) []ExpiringFile {
	results := []ExpiringFile{}
	if root == nil {
		return results
	}

	var walk func(folder *models.Folder, prefix string)
	walk = func(folder *models.Folder, prefix string) {
		currentPath := prefix
		if folder.ID != root.ID {
			if prefix == "" {
				currentPath = folder.Name
			} else {
				currentPath = prefix + PathSeparator + folder.Name
			}
		}

		for _, file := range folder.Files {
			if file.ExpirationDate == "" {
				continue
			}
			exp, err := time.Parse("2006-01-02", file.ExpirationDate)
			if err != nil {
				continue
			}
			left := int(exp.Sub(now).Hours() / 24)
			if exp.After(now) && left <= days {
				results = append(results, ExpiringFile{File: file, Path: currentPath, DaysLeft: left})
			}
		}

		for _, sub := range folder.SubFolders {
			walk(sub, currentPath)
		}
	}

	walk(root, "")

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].File.ExpirationDate < results[j].File.ExpirationDate
	})
	return results
}
