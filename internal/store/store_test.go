package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/printdb/internal/api"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustRef(t *testing.T, s *Store, kind api.RefKind, name string) api.Reference {
	t.Helper()
	ref, err := s.CreateReference(kind, api.ReferenceInput{Name: name})
	require.NoError(t, err)
	return *ref
}

func intPtr(v int) *int { return &v }

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")
	s, err := Open(path)
	require.NoError(t, err)
	mustRef(t, s, api.RefTag, "gift")
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	tags, err := s.ListReferences(api.RefTag)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, path, s.Path())
}

func TestCreateReferenceRejectsDuplicates(t *testing.T) {
	s := openTestStore(t)
	mustRef(t, s, api.RefMaterial, "PLA")

	_, err := s.CreateReference(api.RefMaterial, api.ReferenceInput{Name: "pla"})
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrConflict)
	assert.Contains(t, api.Message(err), `"pla" already exists`)

	_, err = s.CreateReference(api.RefTag, api.ReferenceInput{Name: "PLA"})
	assert.NoError(t, err, "names are unique per kind only")
}

func TestCreateReferenceRequiresName(t *testing.T) {
	s := openTestStore(t)
	_, err := s.CreateReference(api.RefTag, api.ReferenceInput{Name: "  "})
	assert.ErrorIs(t, err, api.ErrValidation)
}

func TestCategoryInitials(t *testing.T) {
	s := openTestStore(t)

	derived, err := s.CreateReference(api.RefCategory, api.ReferenceInput{Name: "Vases"})
	require.NoError(t, err)
	assert.Equal(t, "VAS", derived.SKUInitials)

	explicit, err := s.CreateReference(api.RefCategory, api.ReferenceInput{Name: "Planters", SKUInitials: "pt", Description: "pots"})
	require.NoError(t, err)
	assert.Equal(t, "PT", explicit.SKUInitials)

	_, err = s.CreateReference(api.RefCategory, api.ReferenceInput{Name: "Lamps", SKUInitials: "LAMP"})
	assert.ErrorIs(t, err, api.ErrValidation)

	cats, err := s.ListReferences(api.RefCategory)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Planters", cats[0].Name)
	require.NotNil(t, cats[0].Description)
	assert.Equal(t, "pots", *cats[0].Description)
}

func TestRecordLifecycle(t *testing.T) {
	s := openTestStore(t)
	cat := mustRef(t, s, api.RefCategory, "Vases")
	pla := mustRef(t, s, api.RefMaterial, "PLA")
	gift := mustRef(t, s, api.RefTag, "gift")

	color := "red"
	rec, err := s.CreateRecord(api.RecordInput{
		Name:          "Spiral vase",
		CategoryID:    &cat.ID,
		TagIDs:        []int{gift.ID},
		MaterialIDs:   []int{pla.ID, pla.ID},
		Production:    true,
		Color:         &color,
		StockQuantity: intPtr(4),
		SellingPrice:  intPtr(1999),
	})
	require.NoError(t, err)
	assert.Equal(t, "VAS-0001", rec.SKU)
	assert.Equal(t, []int{gift.ID}, rec.RefIDs(api.RefTag))
	assert.Equal(t, []int{pla.ID}, rec.RefIDs(api.RefMaterial))
	require.NotNil(t, rec.Category)
	assert.Equal(t, "Vases", rec.Category.Name)
	assert.True(t, rec.Production)
	assert.Equal(t, 1999, *rec.SellingPrice)
	assert.Nil(t, rec.Weight)

	second, err := s.CreateRecord(api.RecordInput{Name: "Tall vase", CategoryID: &cat.ID})
	require.NoError(t, err)
	assert.Equal(t, "VAS-0002", second.SKU)

	updated, err := s.UpdateRecord(rec.ID, api.RecordInput{Name: "Spiral vase XL", CategoryID: &cat.ID, TagIDs: nil})
	require.NoError(t, err)
	assert.Equal(t, "VAS-0001", updated.SKU)
	assert.Equal(t, "Spiral vase XL", updated.Name)
	assert.Empty(t, updated.Tags)
	assert.Nil(t, updated.Color)

	require.NoError(t, s.DeleteRecord(rec.ID))
	assert.ErrorIs(t, s.DeleteRecord(rec.ID), api.ErrNotFound)
	_, err = s.UpdateRecord(rec.ID, api.RecordInput{Name: "gone"})
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestCreateRecordWithoutCategoryUsesNamePrefix(t *testing.T) {
	s := openTestStore(t)
	rec, err := s.CreateRecord(api.RecordInput{Name: "Hook"})
	require.NoError(t, err)
	assert.Equal(t, "HOO-0001", rec.SKU)
}

func TestCreateRecordValidation(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CreateRecord(api.RecordInput{Name: ""})
	assert.ErrorIs(t, err, api.ErrValidation)

	_, err = s.CreateRecord(api.RecordInput{Name: "Cup", StockQuantity: intPtr(-1)})
	assert.ErrorIs(t, err, api.ErrValidation)

	_, err = s.CreateRecord(api.RecordInput{Name: "Cup", CategoryID: intPtr(99)})
	assert.ErrorIs(t, err, api.ErrValidation)

	_, err = s.CreateRecord(api.RecordInput{Name: "Cup", TagIDs: []int{42}})
	assert.ErrorIs(t, err, api.ErrValidation)

	records, err := s.SearchRecords("")
	require.NoError(t, err)
	assert.Empty(t, records, "failed creates leave nothing behind")
}

func TestDeleteReferenceInUse(t *testing.T) {
	s := openTestStore(t)
	abs := mustRef(t, s, api.RefMaterial, "ABS")
	cat := mustRef(t, s, api.RefCategory, "Hooks")
	_, err := s.CreateRecord(api.RecordInput{Name: "Wall hook", CategoryID: &cat.ID, MaterialIDs: []int{abs.ID}})
	require.NoError(t, err)

	err = s.DeleteReference(api.RefMaterial, abs.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInUse)
	assert.Contains(t, api.Message(err), "used by 1 record(s)")

	err = s.DeleteReference(api.RefCategory, cat.ID)
	assert.ErrorIs(t, err, api.ErrInUse)

	materials, err := s.ListReferences(api.RefMaterial)
	require.NoError(t, err)
	assert.Len(t, materials, 1)
}

func TestDeleteReference(t *testing.T) {
	s := openTestStore(t)
	tag := mustRef(t, s, api.RefTag, "seasonal")

	require.NoError(t, s.DeleteReference(api.RefTag, tag.ID))
	assert.ErrorIs(t, s.DeleteReference(api.RefTag, tag.ID), api.ErrNotFound)
}

func TestSearchRecordsFuzzy(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{"Spiral vase", "Desk organizer", "Vase stand"} {
		_, err := s.CreateRecord(api.RecordInput{Name: name})
		require.NoError(t, err)
	}

	all, err := s.SearchRecords("  ")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := s.SearchRecords("vase")
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, rec := range found {
		assert.Contains(t, rec.Name, "ase")
	}

	bySKU, err := s.SearchRecords("DES-0001")
	require.NoError(t, err)
	require.NotEmpty(t, bySKU)
	assert.Equal(t, "Desk organizer", bySKU[0].Name)
}
