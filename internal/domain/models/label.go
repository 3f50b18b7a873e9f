package models

// LabelColor is the fixed palette the UI renders label chips with.
type LabelColor string

const (
	LabelColorBlue   LabelColor = "blue"
	LabelColorGreen  LabelColor = "green"
	LabelColorRed    LabelColor = "red"
	LabelColorYellow LabelColor = "yellow"
	LabelColorPurple LabelColor = "purple"
	LabelColorOrange LabelColor = "orange"
	LabelColorPink   LabelColor = "pink"
)

// LabelCategory groups labels by the dossier type they document.
type LabelCategory string

const (
	LabelCategoryClient   LabelCategory = "Client"
	LabelCategorySupplier LabelCategory = "Supplier"
	LabelCategoryShipment LabelCategory = "Shipment"
	LabelCategoryGeneral  LabelCategory = "General"
)

// Label is a tag from the fixed catalog attached to files to denote the
// document type (e.g. "Bill of Loading"). The tree engine only attaches
// catalog references; it never creates or mutates labels.
type Label struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Color    LabelColor    `json:"color" yaml:"color"`
	Category LabelCategory `json:"category" yaml:"category"`
}
