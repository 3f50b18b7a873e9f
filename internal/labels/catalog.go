// Package labels holds the fixed document-label catalog. The tree engine
// treats labels as opaque references; this package is the single source the
// references are drawn from.
package labels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
)

// Catalog is an ordered, id-indexed set of labels.
type Catalog struct {
	labels []models.Label
	byID   map[string]models.Label
}

// NewCatalog builds a catalog from an ordered label list.
func NewCatalog(labels []models.Label) *Catalog {
	byID := make(map[string]models.Label, len(labels))
	for _, l := range labels {
		byID[l.ID] = l
	}
	return &Catalog{labels: labels, byID: byID}
}

// All returns the catalog in its defined order.
func (c *Catalog) All() []models.Label {
	return c.labels
}

// Get returns the label with the given id.
func (c *Catalog) Get(id string) (models.Label, error) {
	l, ok := c.byID[id]
	if !ok {
		return models.Label{}, &domain.NotFoundError{Message: fmt.Sprintf("label %s not found", id)}
	}
	return l, nil
}

// Has reports whether the catalog contains a label with the given id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// LoadFile reads a catalog from a YAML file, replacing the builtin set.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read label catalog: %w", err)
	}
	var labels []models.Label
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("parse label catalog: %w", err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("label catalog %s is empty", path)
	}
	return NewCatalog(labels), nil
}

// Default returns the builtin Fruitstars catalog.
func Default() *Catalog {
	return NewCatalog([]models.Label{
		{ID: "l-c-1", Name: "Sales agreement", Color: models.LabelColorBlue, Category: models.LabelCategoryClient},
		{ID: "l-c-2", Name: "Company profile", Color: models.LabelColorBlue, Category: models.LabelCategoryClient},
		{ID: "l-s-1", Name: "Supplier declaration", Color: models.LabelColorGreen, Category: models.LabelCategorySupplier},
		{ID: "l-s-2", Name: "Purchase agreement", Color: models.LabelColorGreen, Category: models.LabelCategorySupplier},
		{ID: "l-s-3", Name: "Product specification", Color: models.LabelColorGreen, Category: models.LabelCategorySupplier},
		{ID: "l-s-4", Name: "Company profile", Color: models.LabelColorGreen, Category: models.LabelCategorySupplier},
		{ID: "l-s-5", Name: "GlobalGap (DATE)", Color: models.LabelColorOrange, Category: models.LabelCategorySupplier},
		{ID: "l-s-6", Name: "Grasp (DATE)", Color: models.LabelColorOrange, Category: models.LabelCategorySupplier},
		{ID: "l-s-7", Name: "SMETA (DATE)", Color: models.LabelColorOrange, Category: models.LabelCategorySupplier},
		{ID: "l-sh-c-1", Name: "Order confirmation", Color: models.LabelColorRed, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-2", Name: "Bill of Loading", Color: models.LabelColorRed, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-3", Name: "Packinglist", Color: models.LabelColorRed, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-4", Name: "Supplier Invoice", Color: models.LabelColorYellow, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-5", Name: "Draft Phyto", Color: models.LabelColorPurple, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-6", Name: "Phyto", Color: models.LabelColorPurple, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-7", Name: "Waybill", Color: models.LabelColorRed, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-8", Name: "Stamped Phyto", Color: models.LabelColorPurple, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-9", Name: "Telex release", Color: models.LabelColorRed, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-10", Name: "Sales advance invoice", Color: models.LabelColorYellow, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-11", Name: "Quality reports", Color: models.LabelColorPink, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-12", Name: "Client settlement", Color: models.LabelColorYellow, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-13", Name: "Sales invoice", Color: models.LabelColorYellow, Category: models.LabelCategoryShipment},
		{ID: "l-sh-c-14", Name: "Internal invoice", Color: models.LabelColorYellow, Category: models.LabelCategoryShipment},
		{ID: "l-sh-cost-1", Name: "Transport costs", Color: models.LabelColorYellow, Category: models.LabelCategoryShipment},
		{ID: "l-sh-cost-2", Name: "THC costs", Color: models.LabelColorYellow, Category: models.LabelCategoryShipment},
		{ID: "l-sh-cost-3", Name: "Other costs", Color: models.LabelColorYellow, Category: models.LabelCategoryShipment},
		{ID: "l-o-1", Name: "Other", Color: models.LabelColorBlue, Category: models.LabelCategoryGeneral},
	})
}

// OtherLabelID is the general-purpose fallback label suggested when no
// specific label fits a document.
const OtherLabelID = "l-o-1"
