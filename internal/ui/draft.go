package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gravitrone/printdb/internal/api"
)

// --- Form Fields ---

type fieldID int

const (
	fieldName fieldID = iota
	fieldDescription
	fieldTags
	fieldMaterials
	fieldCategory
	fieldProduction
	fieldColor
	fieldPrintTime
	fieldWeight
	fieldStock
	fieldReorder
	fieldUnitCost
	fieldSellingPrice
	fieldCount
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldInt
	fieldMoney
	fieldBool
	fieldRef
)

type fieldSpec struct {
	id    fieldID
	label string
	kind  fieldKind
	ref   api.RefKind
}

// formFields is the form order. Reference fields appear in sub-edit
// sequence order.
var formFields = [fieldCount]fieldSpec{
	{fieldName, "Name", fieldText, 0},
	{fieldDescription, "Description", fieldText, 0},
	{fieldTags, "Tags", fieldRef, api.RefTag},
	{fieldMaterials, "Materials", fieldRef, api.RefMaterial},
	{fieldCategory, "Category", fieldRef, api.RefCategory},
	{fieldProduction, "In production", fieldBool, 0},
	{fieldColor, "Color", fieldText, 0},
	{fieldPrintTime, "Print time", fieldText, 0},
	{fieldWeight, "Weight (g)", fieldInt, 0},
	{fieldStock, "Stock", fieldInt, 0},
	{fieldReorder, "Reorder point", fieldInt, 0},
	{fieldUnitCost, "Unit cost", fieldMoney, 0},
	{fieldSellingPrice, "Selling price", fieldMoney, 0},
}

func refField(kind api.RefKind) fieldID {
	switch kind {
	case api.RefTag:
		return fieldTags
	case api.RefMaterial:
		return fieldMaterials
	}
	return fieldCategory
}

// descendTarget picks the sub-edit Tab opens from the focused field: the
// field's own collection when it is a reference field, otherwise the next
// reference field after it, wrapping past the end of the form.
func descendTarget(focused int) api.RefKind {
	if focused < 0 || focused >= int(fieldCount) {
		focused = 0
	}
	for i := 0; i < int(fieldCount); i++ {
		spec := formFields[(focused+i)%int(fieldCount)]
		if spec.kind == fieldRef {
			return spec.ref
		}
	}
	return api.RefTag
}

// --- Draft ---

// Draft is the uncommitted copy of a record the form edits. Text-like
// fields hold what the user typed; they are parsed only on commit.
type Draft struct {
	RecordID   int
	SKU        string
	values     [fieldCount]string
	production bool
	refs       [3][]int

	errs      [fieldCount]string
	FormError string
}

// NewDraft is the empty template used by Creating.
func NewDraft() *Draft {
	return &Draft{production: true}
}

// DraftFromRecord copies r into a new draft.
func DraftFromRecord(r api.Record) *Draft {
	d := &Draft{
		RecordID:   r.ID,
		SKU:        r.SKU,
		production: r.Production,
	}
	d.values[fieldName] = r.Name
	d.values[fieldDescription] = derefString(r.Description)
	d.values[fieldColor] = derefString(r.Color)
	d.values[fieldPrintTime] = derefString(r.PrintTime)
	d.values[fieldWeight] = formatOptInt(r.Weight)
	d.values[fieldStock] = formatOptInt(r.StockQuantity)
	d.values[fieldReorder] = formatOptInt(r.ReorderPoint)
	d.values[fieldUnitCost] = formatCents(r.UnitCost)
	d.values[fieldSellingPrice] = formatCents(r.SellingPrice)
	for _, kind := range api.RefKinds {
		d.refs[kind] = append([]int(nil), r.RefIDs(kind)...)
	}
	return d
}

// Value is the raw text of a field.
func (d *Draft) Value(f fieldID) string { return d.values[f] }

// Production is the production flag.
func (d *Draft) Production() bool { return d.production }

// RefIDs returns the selected reference ids of kind.
func (d *Draft) RefIDs(kind api.RefKind) []int { return d.refs[kind] }

// FieldError returns the validation message attached to f.
func (d *Draft) FieldError(f fieldID) string { return d.errs[f] }

// HasErrors reports whether any field or form error is showing.
func (d *Draft) HasErrors() bool {
	if d.FormError != "" {
		return true
	}
	for _, e := range d.errs {
		if e != "" {
			return true
		}
	}
	return false
}

// SetRefIDs replaces the selection of kind. Only sub-edit exit calls it.
func (d *Draft) SetRefIDs(kind api.RefKind, ids []int) {
	d.refs[kind] = ids
	d.errs[refField(kind)] = ""
}

// DropRef forgets a reference that no longer exists.
func (d *Draft) DropRef(kind api.RefKind, id int) {
	d.refs[kind] = removeID(d.refs[kind], id)
}

// AppendText adds typed text to an editable field.
func (d *Draft) AppendText(f fieldID, s string) bool {
	switch formFields[f].kind {
	case fieldText, fieldInt, fieldMoney:
		d.values[f] += s
		d.errs[f] = ""
		d.FormError = ""
		return true
	}
	return false
}

// Backspace removes the last rune of an editable field.
func (d *Draft) Backspace(f fieldID) bool {
	switch formFields[f].kind {
	case fieldText, fieldInt, fieldMoney:
		r := []rune(d.values[f])
		if len(r) == 0 {
			return false
		}
		d.values[f] = string(r[:len(r)-1])
		d.errs[f] = ""
		d.FormError = ""
		return true
	}
	return false
}

// ToggleProduction flips the production flag.
func (d *Draft) ToggleProduction() {
	d.production = !d.production
}

// Validate checks every field and records per-field messages. Creating
// also requires a category since the SKU prefix comes from it.
func (d *Draft) Validate(creating bool) bool {
	d.errs = [fieldCount]string{}
	d.FormError = ""

	if strings.TrimSpace(d.values[fieldName]) == "" {
		d.errs[fieldName] = "name is required"
	}
	if creating && len(d.refs[api.RefCategory]) == 0 {
		d.errs[fieldCategory] = "category is required"
	}
	for _, spec := range formFields {
		switch spec.kind {
		case fieldInt:
			if _, err := parseOptInt(d.values[spec.id]); err != nil {
				d.errs[spec.id] = err.Error()
			}
		case fieldMoney:
			if _, err := parseCents(d.values[spec.id]); err != nil {
				d.errs[spec.id] = err.Error()
			}
		}
	}
	return !d.HasErrors()
}

// FirstError returns the first field carrying an error, if any.
func (d *Draft) FirstError() (fieldID, bool) {
	for i, e := range d.errs {
		if e != "" {
			return fieldID(i), true
		}
	}
	return 0, false
}

// Input converts the draft into a catalog request. Callers run Validate
// first; parse errors are returned all the same.
func (d *Draft) Input() (api.RecordInput, error) {
	in := api.RecordInput{
		Name:        strings.TrimSpace(d.values[fieldName]),
		Description: optText(d.values[fieldDescription]),
		Color:       optText(d.values[fieldColor]),
		PrintTime:   optText(d.values[fieldPrintTime]),
		Production:  d.production,
		TagIDs:      nonNil(d.refs[api.RefTag]),
		MaterialIDs: nonNil(d.refs[api.RefMaterial]),
	}
	if cats := d.refs[api.RefCategory]; len(cats) > 0 {
		id := cats[0]
		in.CategoryID = &id
	}

	ints := []struct {
		f   fieldID
		dst **int
	}{
		{fieldWeight, &in.Weight},
		{fieldStock, &in.StockQuantity},
		{fieldReorder, &in.ReorderPoint},
	}
	for _, it := range ints {
		v, err := parseOptInt(d.values[it.f])
		if err != nil {
			return api.RecordInput{}, fmt.Errorf("%s: %w", formFields[it.f].label, err)
		}
		*it.dst = v
	}
	money := []struct {
		f   fieldID
		dst **int
	}{
		{fieldUnitCost, &in.UnitCost},
		{fieldSellingPrice, &in.SellingPrice},
	}
	for _, it := range money {
		v, err := parseCents(d.values[it.f])
		if err != nil {
			return api.RecordInput{}, fmt.Errorf("%s: %w", formFields[it.f].label, err)
		}
		*it.dst = v
	}
	return in, nil
}

// --- Parsing ---

func parseOptInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("must be a whole number")
	}
	if n < 0 {
		return nil, fmt.Errorf("must not be negative")
	}
	if n > math.MaxInt32 {
		return nil, fmt.Errorf("must be at most %d", math.MaxInt32)
	}
	return &n, nil
}

// parseCents reads a decimal amount such as "12.5" into cents.
func parseCents(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return nil, fmt.Errorf("must be an amount like 12.50")
	}
	units, err := strconv.Atoi(whole)
	if err != nil || strings.HasPrefix(whole, "+") {
		return nil, fmt.Errorf("must be an amount like 12.50")
	}
	if units < 0 || strings.HasPrefix(whole, "-") {
		return nil, fmt.Errorf("must not be negative")
	}
	cents := 0
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		c, err := strconv.Atoi(frac)
		if err != nil || c < 0 || strings.HasPrefix(frac, "+") || strings.HasPrefix(frac, "-") {
			return nil, fmt.Errorf("must be an amount like 12.50")
		}
		cents = c
	}
	// Amounts are stored as 32-bit cents.
	if units > math.MaxInt32/100 || units*100+cents > math.MaxInt32 {
		return nil, fmt.Errorf("must be at most %d.%02d", math.MaxInt32/100, math.MaxInt32%100)
	}
	total := units*100 + cents
	return &total, nil
}

func formatCents(v *int) string {
	if v == nil {
		return ""
	}
	n, sign := *v, ""
	if n < 0 {
		n, sign = -n, "-"
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

func formatOptInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return append([]int(nil), ids...)
}

func removeID(ids []int, id int) []int {
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
