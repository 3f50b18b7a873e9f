package tree

import (
	"strings"

	"fruitstars/internal/domain/models"
)

// FindFolderByID returns the first folder in the subtree rooted at folder
// whose id matches, searching pre-order with children in list order.
// Returns nil if the id is not reachable.
func FindFolderByID(folder *models.Folder, id string) *models.Folder {
	if folder == nil {
		return nil
	}
	if folder.ID == id {
		return folder
	}
	for _, sub := range folder.SubFolders {
		if found := FindFolderByID(sub, id); found != nil {
			return found
		}
	}
	return nil
}

// FindParentOfFile returns the folder whose direct file list contains the
// file with the given id, or nil if the file does not exist anywhere in the
// subtree. The current level is checked before recursing.
func FindParentOfFile(folder *models.Folder, fileID string) *models.Folder {
	if folder == nil {
		return nil
	}
	for _, f := range folder.Files {
		if f.ID == fileID {
			return folder
		}
	}
	for _, sub := range folder.SubFolders {
		if found := FindParentOfFile(sub, fileID); found != nil {
			return found
		}
	}
	return nil
}

// FindFileByID returns the file with the given id anywhere in the subtree,
// or nil if absent.
func FindFileByID(folder *models.Folder, fileID string) *models.File {
	parent := FindParentOfFile(folder, fileID)
	if parent == nil {
		return nil
	}
	for _, f := range parent.Files {
		if f.ID == fileID {
			return f
		}
	}
	return nil
}

// PathTo returns the sequence of folders from root to the target inclusive,
// exploring subfolders in list order. The tree has no aliasing, so the first
// matching path is the only one. Returns nil if the id is not reachable.
func PathTo(root *models.Folder, id string) []*models.Folder {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return []*models.Folder{root}
	}
	for _, sub := range root.SubFolders {
		if rest := PathTo(sub, id); rest != nil {
			return append([]*models.Folder{root}, rest...)
		}
	}
	return nil
}

// Flatten returns every folder in the subtree in pre-order, including the
// subtree root itself.
func Flatten(folder *models.Folder) []*models.Folder {
	if folder == nil {
		return nil
	}
	all := []*models.Folder{folder}
	for _, sub := range folder.SubFolders {
		all = append(all, Flatten(sub)...)
	}
	return all
}

// Destinations returns every folder a file may be moved into: the whole tree
// flattened with the root sentinel excluded.
func Destinations(root *models.Folder) []*models.Folder {
	all := Flatten(root)
	if len(all) == 0 {
		return nil
	}
	dests := make([]*models.Folder, 0, len(all)-1)
	for _, f := range all {
		if f.ID == root.ID {
			continue
		}
		dests = append(dests, f)
	}
	return dests
}

// FolderPath is a flattened id→path projection entry, the read-only tree
// context handed to the placement-suggestion service.
type FolderPath struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// Projection flattens the tree into id→path pairs in pre-order. The root is
// included; its path is its own display name.
func Projection(root *models.Folder) []FolderPath {
	var out []FolderPath
	var walk func(folder *models.Folder, prefix string)
	walk = func(folder *models.Folder, prefix string) {
		path := folder.Name
		if prefix != "" {
			path = prefix + PathSeparator + folder.Name
		}
		out = append(out, FolderPath{ID: folder.ID, Path: path})
		for _, sub := range folder.SubFolders {
			walk(sub, path)
		}
	}
	if root != nil {
		walk(root, "")
	}
	return out
}

// DisplayPath renders the chain of folder names from root to the folder with
// the given id, root excluded. Returns "" if the id is not reachable or is
// the root itself.
func DisplayPath(root *models.Folder, id string) string {
	chain := PathTo(root, id)
	if chain == nil {
		return ""
	}
	names := make([]string, 0, len(chain))
	for _, f := range chain {
		if f.ID == root.ID {
			continue
		}
		names = append(names, f.Name)
	}
	return strings.Join(names, PathSeparator)
}
