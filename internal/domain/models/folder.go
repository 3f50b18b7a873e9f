package models

// FolderKind is an explicit structural discriminator assigned at creation
// time. The folder name stays a free-text display label; consumers that need
// to branch on structure (dashboard, dossier views, suggestion context) key
// off the kind instead of well-known name strings.
type FolderKind string

const (
	// FolderKindRoot is the single tree root sentinel.
	FolderKindRoot FolderKind = "root"

	// FolderKindCategory is a fixed organizational folder (Clients,
	// Suppliers, Shipments, Products, Procedures, Container, Residuals).
	FolderKindCategory FolderKind = "category"

	// FolderKindDossier is a shipment dossier carrying denormalized
	// client/supplier/invoice metadata.
	FolderKindDossier FolderKind = "dossier"

	// FolderKindGeneric is any other folder (client, supplier or product
	// entity folders, ad-hoc subfolders).
	FolderKindGeneric FolderKind = "generic"
)

// Collaborator is a user reference attached to a folder. The tree engine
// carries collaborators in the shape but never populates them; sharing is
// managed by the access-control layer.
type Collaborator struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	AvatarURL string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	Role      string `json:"role,omitempty" yaml:"role,omitempty"`
}

// Folder is a node of the document tree. Every folder except the root has
// exactly one parent; child order is meaningful and preserved by all
// operations. The dossier fields are denormalized display data resolved at
// creation/update time and only populated on dossier folders.
type Folder struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	Kind          FolderKind     `json:"kind" yaml:"kind"`
	SubFolders    []*Folder      `json:"sub_folders" yaml:"sub_folders"`
	Files         []*File        `json:"files" yaml:"files"`
	Collaborators []Collaborator `json:"collaborators" yaml:"collaborators,omitempty"`

	ClientID        string   `json:"client_id,omitempty" yaml:"client_id,omitempty"`
	ClientName      string   `json:"client_name,omitempty" yaml:"client_name,omitempty"`
	SupplierID      string   `json:"supplier_id,omitempty" yaml:"supplier_id,omitempty"`
	SupplierName    string   `json:"supplier_name,omitempty" yaml:"supplier_name,omitempty"`
	ProductIDs      []string `json:"product_ids,omitempty" yaml:"product_ids,omitempty"`
	ProductNames    []string `json:"product_names,omitempty" yaml:"product_names,omitempty"`
	InvoiceNumber   string   `json:"invoice_number,omitempty" yaml:"invoice_number,omitempty"`
	BatchNumber     string   `json:"batch_number,omitempty" yaml:"batch_number,omitempty"`
	ContainerNumber string   `json:"container_number,omitempty" yaml:"container_number,omitempty"`
	ShippingLine    string   `json:"shipping_line,omitempty" yaml:"shipping_line,omitempty"`
	Vessel          string   `json:"vessel,omitempty" yaml:"vessel,omitempty"`
	OrderReference  string   `json:"order_reference,omitempty" yaml:"order_reference,omitempty"`
	DestinationPort string   `json:"destination_port,omitempty" yaml:"destination_port,omitempty"`
}

// Clone returns a deep copy of the folder and its entire subtree. Mutations
// only ever edit clones, so snapshots handed out to readers stay valid.
func (f *Folder) Clone() *Folder {
	if f == nil {
		return nil
	}
	clone := *f

	clone.SubFolders = make([]*Folder, len(f.SubFolders))
	for i, sub := range f.SubFolders {
		clone.SubFolders[i] = sub.Clone()
	}

	clone.Files = make([]*File, len(f.Files))
	for i, file := range f.Files {
		clone.Files[i] = file.Clone()
	}

	if f.Collaborators != nil {
		clone.Collaborators = make([]Collaborator, len(f.Collaborators))
		copy(clone.Collaborators, f.Collaborators)
	}
	if f.ProductIDs != nil {
		clone.ProductIDs = append([]string(nil), f.ProductIDs...)
	}
	if f.ProductNames != nil {
		clone.ProductNames = append([]string(nil), f.ProductNames...)
	}

	return &clone
}

// FileCount returns the total number of files in the folder's subtree.
func (f *Folder) FileCount() int {
	count := len(f.Files)
	for _, sub := range f.SubFolders {
		count += sub.FileCount()
	}
	return count
}

// FolderCount returns the number of folders in the subtree, including f itself.
func (f *Folder) FolderCount() int {
	count := 1
	for _, sub := range f.SubFolders {
		count += sub.FolderCount()
	}
	return count
}
