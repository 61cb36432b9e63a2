package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// --- Reference Kinds ---

// RefKind names one of the reference collections a record points into.
type RefKind int

const (
	RefTag RefKind = iota
	RefMaterial
	RefCategory
)

// RefKinds lists the reference kinds in sub-edit sequence order.
var RefKinds = []RefKind{RefTag, RefMaterial, RefCategory}

func (k RefKind) String() string {
	switch k {
	case RefTag:
		return "tag"
	case RefMaterial:
		return "material"
	case RefCategory:
		return "category"
	}
	return fmt.Sprintf("RefKind(%d)", int(k))
}

// Label is the plural display name used for tabs and titles.
func (k RefKind) Label() string {
	switch k {
	case RefTag:
		return "Tags"
	case RefMaterial:
		return "Materials"
	case RefCategory:
		return "Categories"
	}
	return k.String()
}

// Path is the collection segment in the REST API.
func (k RefKind) Path() string {
	switch k {
	case RefTag:
		return "tags"
	case RefMaterial:
		return "materials"
	case RefCategory:
		return "categories"
	}
	return ""
}

// Single reports whether a record holds at most one reference of this kind.
func (k RefKind) Single() bool {
	return k == RefCategory
}

// ParseRefKind accepts singular or plural kind names.
func ParseRefKind(s string) (RefKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tag", "tags":
		return RefTag, nil
	case "material", "materials":
		return RefMaterial, nil
	case "category", "categories":
		return RefCategory, nil
	}
	return 0, fmt.Errorf("unknown reference kind %q (want tags, materials or categories)", s)
}

// --- Reference ---

// Reference is a tag, material or category value shared between records.
type Reference struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	SKUInitials string  `json:"sku_initials,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ReferenceInput defines the fields required to create a reference.
type ReferenceInput struct {
	Name        string `json:"name"`
	SKUInitials string `json:"sku_initials,omitempty"`
	Description string `json:"description,omitempty"`
}

// --- Record ---

// Record is a catalog product.
type Record struct {
	ID          int         `json:"id"`
	SKU         string      `json:"sku"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	CategoryID  *int        `json:"category_id,omitempty"`
	Category    *Reference  `json:"category,omitempty"`
	Tags        []Reference `json:"tags"`
	Materials   []Reference `json:"materials"`

	Production bool    `json:"production"`
	Color      *string `json:"color,omitempty"`
	PrintTime  *string `json:"print_time,omitempty"`
	Weight     *int    `json:"weight,omitempty"`

	StockQuantity *int `json:"stock_quantity,omitempty"`
	ReorderPoint  *int `json:"reorder_point,omitempty"`
	UnitCost      *int `json:"unit_cost,omitempty"`     // cents
	SellingPrice  *int `json:"selling_price,omitempty"` // cents

	Active bool `json:"active"`
}

// UnmarshalJSON treats a record without an "active" field as active.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	p := plain{Active: true}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Record(p)
	return nil
}

// RefIDs returns the ids of the record's references of the given kind.
func (r Record) RefIDs(kind RefKind) []int {
	switch kind {
	case RefTag:
		return refIDs(r.Tags)
	case RefMaterial:
		return refIDs(r.Materials)
	case RefCategory:
		if r.CategoryID != nil {
			return []int{*r.CategoryID}
		}
		if r.Category != nil {
			return []int{r.Category.ID}
		}
	}
	return nil
}

func refIDs(refs []Reference) []int {
	if len(refs) == 0 {
		return nil
	}
	ids := make([]int, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids
}

// RecordInput is the body for create and update requests.
type RecordInput struct {
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	CategoryID    *int    `json:"category_id,omitempty"`
	TagIDs        []int   `json:"tag_ids"`
	MaterialIDs   []int   `json:"material_ids"`
	Production    bool    `json:"production"`
	Color         *string `json:"color,omitempty"`
	PrintTime     *string `json:"print_time,omitempty"`
	Weight        *int    `json:"weight,omitempty"`
	StockQuantity *int    `json:"stock_quantity,omitempty"`
	ReorderPoint  *int    `json:"reorder_point,omitempty"`
	UnitCost      *int    `json:"unit_cost,omitempty"`
	SellingPrice  *int    `json:"selling_price,omitempty"`
}

// --- Catalog ---

// Catalog is the collaborator the interface reads from and writes to.
// Client talks to the REST service; store.Store keeps a local SQLite file.
type Catalog interface {
	ListReferences(kind RefKind) ([]Reference, error)
	SearchRecords(query string) ([]Record, error)
	CreateRecord(input RecordInput) (*Record, error)
	UpdateRecord(id int, input RecordInput) (*Record, error)
	DeleteRecord(id int) error
	CreateReference(kind RefKind, input ReferenceInput) (*Reference, error)
	DeleteReference(kind RefKind, id int) error
}

// QueryParams are appended to request paths by buildQuery.
type QueryParams map[string]string
