package models

// FileType is the closed enumeration of document types the browser renders.
type FileType string

const (
	FileTypeImage    FileType = "Image"
	FileTypePDF      FileType = "PDF"
	FileTypeDocument FileType = "Document"
)

// ValidFileType reports whether t is a member of the FileType enumeration.
func ValidFileType(t FileType) bool {
	switch t {
	case FileTypeImage, FileTypePDF, FileTypeDocument:
		return true
	}
	return false
}

// File is a leaf of the document tree. A file belongs to exactly one
// folder's file list at any time. Size and LastModified are pre-formatted
// display strings; ExpirationDate, when present, is an ISO yyyy-MM-dd date.
type File struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Type           FileType `json:"type" yaml:"type"`
	Size           string   `json:"size" yaml:"size"`
	LastModified   string   `json:"last_modified" yaml:"last_modified"`
	Labels         []Label  `json:"labels" yaml:"labels"`
	PreviewURL     string   `json:"preview_url" yaml:"preview_url,omitempty"`
	ExpirationDate string   `json:"expiration_date,omitempty" yaml:"expiration_date,omitempty"`
	InvoiceNumber  string   `json:"invoice_number,omitempty" yaml:"invoice_number,omitempty"`
}

// Clone returns a deep copy of the file.
func (f *File) Clone() *File {
	if f == nil {
		return nil
	}
	clone := *f
	clone.Labels = make([]Label, len(f.Labels))
	copy(clone.Labels, f.Labels)
	return &clone
}

// HasLabel reports whether the file already carries a label with the given id.
func (f *File) HasLabel(labelID string) bool {
	for _, l := range f.Labels {
		if l.ID == labelID {
			return true
		}
	}
	return false
}
