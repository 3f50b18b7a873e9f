package service

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"fruitstars/internal/config"
	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
	"fruitstars/internal/tree"
)

// noSeparator rejects names containing the display-path separator. Dossier
// names like "26525 / 200" are fine; " > " would make rendered paths
// ambiguous.
var noSeparator = validation.NewStringRuleWithError(
	func(s string) bool { return !strings.Contains(s, tree.PathSeparator) },
	validation.NewError("validation_no_separator", "must not contain the path separator \" > \""),
)

// CreateFolderRequest creates a folder under a parent. Dossier fields are
// optional references resolved to display names by the engine.
type CreateFolderRequest struct {
	ParentID        string            `json:"parent_id"`
	Name            string            `json:"name"`
	Kind            models.FolderKind `json:"kind,omitempty"`
	ClientID        string            `json:"client_id,omitempty"`
	SupplierID      string            `json:"supplier_id,omitempty"`
	ProductIDs      []string          `json:"product_ids,omitempty"`
	InvoiceNumber   string            `json:"invoice_number,omitempty"`
	BatchNumber     string            `json:"batch_number,omitempty"`
	ContainerNumber string            `json:"container_number,omitempty"`
	ShippingLine    string            `json:"shipping_line,omitempty"`
	Vessel          string            `json:"vessel,omitempty"`
	OrderReference  string            `json:"order_reference,omitempty"`
	DestinationPort string            `json:"destination_port,omitempty"`
}

// Validate checks the request fields.
func (r *CreateFolderRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.ParentID, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(1, config.MaxFolderNameLength), noSeparator),
		validation.Field(&r.Kind, validation.In(
			models.FolderKindCategory, models.FolderKindDossier, models.FolderKindGeneric,
		)),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

// UpdateFolderRequest is a partial folder update; nil fields are untouched.
type UpdateFolderRequest struct {
	Name            *string            `json:"name,omitempty"`
	Kind            *models.FolderKind `json:"kind,omitempty"`
	ClientID        *string            `json:"client_id,omitempty"`
	SupplierID      *string            `json:"supplier_id,omitempty"`
	ProductIDs      *[]string          `json:"product_ids,omitempty"`
	InvoiceNumber   *string            `json:"invoice_number,omitempty"`
	BatchNumber     *string            `json:"batch_number,omitempty"`
	ContainerNumber *string            `json:"container_number,omitempty"`
	ShippingLine    *string            `json:"shipping_line,omitempty"`
	Vessel          *string            `json:"vessel,omitempty"`
	OrderReference  *string            `json:"order_reference,omitempty"`
	DestinationPort *string            `json:"destination_port,omitempty"`
}

// Validate checks the request fields. At least one field must be present.
func (r *UpdateFolderRequest) Validate() error {
	if r.Name == nil && r.Kind == nil && r.ClientID == nil && r.SupplierID == nil &&
		r.ProductIDs == nil && r.InvoiceNumber == nil && r.BatchNumber == nil &&
		r.ContainerNumber == nil && r.ShippingLine == nil && r.Vessel == nil &&
		r.OrderReference == nil && r.DestinationPort == nil {
		return &domain.ValidationError{Message: "at least one field must be provided"}
	}

	rules := []*validation.FieldRules{}
	if r.Name != nil {
		rules = append(rules, validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
			noSeparator,
		))
	}
	if r.Kind != nil {
		rules = append(rules, validation.Field(&r.Kind, validation.In(
			models.FolderKindCategory, models.FolderKindDossier, models.FolderKindGeneric,
		)))
	}
	if err := validation.ValidateStruct(r, rules...); err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

// AddFileRequest uploads file metadata into a folder. Label ids must exist
// in the catalog.
type AddFileRequest struct {
	FolderID       string          `json:"folder_id"`
	Name           string          `json:"name"`
	Type           models.FileType `json:"type"`
	Size           string          `json:"size,omitempty"`
	ExpirationDate string          `json:"expiration_date,omitempty"`
	InvoiceNumber  string          `json:"invoice_number,omitempty"`
	LabelIDs       []string        `json:"label_ids,omitempty"`
}

// Validate checks the request fields.
func (r *AddFileRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.FolderID, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(1, config.MaxFileNameLength)),
		validation.Field(&r.Type, validation.Required, validation.In(
			models.FileTypeImage, models.FileTypePDF, models.FileTypeDocument,
		)),
		validation.Field(&r.ExpirationDate, validation.Date("2006-01-02")),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

// MoveFileRequest relocates a file to a target folder.
type MoveFileRequest struct {
	TargetFolderID string `json:"target_folder_id"`
}

// Validate checks the request fields.
func (r *MoveFileRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.TargetFolderID, validation.Required),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

// AddLabelRequest attaches a catalog label to a file.
type AddLabelRequest struct {
	LabelID string `json:"label_id"`
}

// Validate checks the request fields.
func (r *AddLabelRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.LabelID, validation.Required),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

// ExpiryWindow normalizes the expiring-files window, falling back to the
// dashboard default and rejecting out-of-range values.
func ExpiryWindow(days int) (int, error) {
	if days == 0 {
		return config.DefaultExpiryWindowDays, nil
	}
	if days < 0 || days > config.MaxExpiryWindowDays {
		return 0, &domain.ValidationError{
			Message: fmt.Sprintf("days must be between 1 and %d", config.MaxExpiryWindowDays),
		}
	}
	return days, nil
}
