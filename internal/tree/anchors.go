// Package tree implements the folder-tree engine: deterministic lookups over
// a nested folder/file structure and copy-on-write mutations applied through
// a Store that owns the canonical snapshot.
package tree

// Well-known folder ids. The top level of the tree is organized around these
// anchors by convention; the engine only depends on RootFolderID (the clone
// boundary) and ProductsFolderID (product name resolution), everything else
// is for consumers and seeding.
const (
	RootFolderID       = "root"
	ClientsFolderID    = "f1"
	SuppliersFolderID  = "f2"
	ShipmentsFolderID  = "f3"
	ProductsFolderID   = "f4"
	ProceduresFolderID = "f5"
	ContainerFolderID  = "f3-1"
	ResidualsFolderID  = "f3-2"
)

// PathSeparator joins ancestor folder names in display paths
// ("Shipments > Container > 26525 / 200").
const PathSeparator = " > "
