package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRecords(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, "vase", r.URL.Query().Get("q"))
		w.Write(jsonResponse([]map[string]any{
			{
				"id": 1, "sku": "VAS-0001", "name": "Spiral vase",
				"category_id": 2,
				"tags":        []map[string]any{{"id": 5, "name": "gift"}},
				"materials":   []map[string]any{{"id": 1, "name": "PLA"}},
				"production":  true,
			},
		}))
	})

	records, err := client.SearchRecords("vase")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "VAS-0001", records[0].SKU)
	assert.Equal(t, []int{5}, records[0].RefIDs(RefTag))
	assert.Equal(t, []int{1}, records[0].RefIDs(RefMaterial))
	assert.Equal(t, []int{2}, records[0].RefIDs(RefCategory))
}

func TestSearchRecordsEmptyQueryListsAll(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write(jsonResponse([]map[string]any{}))
	})

	records, err := client.SearchRecords("")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateRecord(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Planter", body["name"])
		assert.Equal(t, float64(2), body["category_id"])
		assert.Equal(t, []any{float64(1), float64(3)}, body["tag_ids"])
		assert.NotContains(t, body, "weight")

		w.Write(jsonResponse(map[string]any{"id": 10, "sku": "POT-0010", "name": "Planter"}))
	})

	cat := 2
	rec, err := client.CreateRecord(RecordInput{Name: "Planter", CategoryID: &cat, TagIDs: []int{1, 3}})
	require.NoError(t, err)
	assert.Equal(t, 10, rec.ID)
}

func TestUpdateRecordNotFound(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/products/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Product not found"}`))
	})

	_, err := client.UpdateRecord(42, RecordInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRecord(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteRecord(3))
}

func TestDeleteRecordConflictIsNotInUse(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"stale"}`))
	})

	err := client.DeleteRecord(3)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRecordActiveDefaultsToTrue(t *testing.T) {
	var records []Record
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": 1, "sku": "VAS-0001", "name": "Spiral vase"},
		{"id": 2, "sku": "HOO-0001", "name": "Wall hook", "active": false}
	]`), &records))
	require.Len(t, records, 2)
	assert.True(t, records[0].Active)
	assert.False(t, records[1].Active)
	assert.Equal(t, "Wall hook", records[1].Name)
}
