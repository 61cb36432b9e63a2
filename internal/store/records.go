package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/gravitrone/printdb/internal/api"
)

const recordColumns = `p.id, p.sku, p.name, p.description, p.category_id,
	c.name, c.sku_initials, p.production, p.color, p.print_time, p.weight,
	p.stock_quantity, p.reorder_point, p.unit_cost, p.selling_price, p.active`

// SearchRecords lists all records for an empty query, otherwise the records
// whose SKU or name fuzzily match it, best match first.
func (s *Store) SearchRecords(query string) ([]api.Record, error) {
	records, err := s.loadRecords("")
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return records, nil
	}

	matches := fuzzy.FindFrom(query, recordSource(records))
	out := make([]api.Record, 0, len(matches))
	for _, m := range matches {
		out = append(out, records[m.Index])
	}
	return out, nil
}

// recordSource exposes records to fuzzy matching as "SKU name" strings.
type recordSource []api.Record

func (r recordSource) String(i int) string { return r[i].SKU + " " + r[i].Name }
func (r recordSource) Len() int            { return len(r) }

// GetRecord loads one record with its references.
func (s *Store) GetRecord(id int) (*api.Record, error) {
	records, err := s.loadRecords("WHERE p.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, api.NewError(api.KindNotFound, "record %d not found", id)
	}
	return &records[0], nil
}

// CreateRecord inserts a record and assigns the next SKU for its prefix.
func (s *Store) CreateRecord(input api.RecordInput) (*api.Record, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, storeErr("create record", err)
	}
	defer tx.Rollback()

	prefix, err := skuPrefix(tx, input)
	if err != nil {
		return nil, err
	}
	sku, err := nextSKU(tx, prefix)
	if err != nil {
		return nil, err
	}

	res, err := tx.Exec(`INSERT INTO products (sku, name, description, category_id, production, color,
		print_time, weight, stock_quantity, reorder_point, unit_cost, selling_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		append([]any{sku}, inputArgs(input)...)...)
	if err != nil {
		return nil, storeErr("create record", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr("create record", err)
	}
	if err := replaceLinks(tx, int(id), input); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr("create record", err)
	}
	return s.GetRecord(int(id))
}

// UpdateRecord replaces the editable fields of a record. The SKU is kept.
func (s *Store) UpdateRecord(id int, input api.RecordInput) (*api.Record, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, storeErr("update record", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE products SET name = ?, description = ?, category_id = ?, production = ?,
		color = ?, print_time = ?, weight = ?, stock_quantity = ?, reorder_point = ?,
		unit_cost = ?, selling_price = ? WHERE id = ?`,
		append(inputArgs(input), id)...)
	if err != nil {
		return nil, storeErr("update record", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, api.NewError(api.KindNotFound, "record %d not found", id)
	}
	if err := replaceLinks(tx, id, input); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr("update record", err)
	}
	return s.GetRecord(id)
}

// DeleteRecord removes a record and its tag and material links.
func (s *Store) DeleteRecord(id int) error {
	res, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return storeErr("delete record", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return api.NewError(api.KindNotFound, "record %d not found", id)
	}
	return nil
}

// inputArgs lists the column values in products column order, name first.
func inputArgs(input api.RecordInput) []any {
	return []any{
		strings.TrimSpace(input.Name), optString(input.Description), optInt(input.CategoryID),
		input.Production, optString(input.Color), optString(input.PrintTime), optInt(input.Weight),
		optInt(input.StockQuantity), optInt(input.ReorderPoint), optInt(input.UnitCost),
		optInt(input.SellingPrice),
	}
}

func optString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func optInt(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func validateInput(input api.RecordInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return api.NewError(api.KindValidation, "name is required")
	}
	for field, v := range map[string]*int{
		"weight":         input.Weight,
		"stock_quantity": input.StockQuantity,
		"reorder_point":  input.ReorderPoint,
		"unit_cost":      input.UnitCost,
		"selling_price":  input.SellingPrice,
	} {
		if v != nil && *v < 0 {
			return api.NewError(api.KindValidation, "%s must not be negative", field)
		}
	}
	return nil
}

// skuPrefix uses the category initials, falling back to the first three
// letters of the record name.
func skuPrefix(tx *sql.Tx, input api.RecordInput) (string, error) {
	if input.CategoryID != nil {
		var initials string
		err := tx.QueryRow("SELECT sku_initials FROM categories WHERE id = ?", *input.CategoryID).Scan(&initials)
		if errors.Is(err, sql.ErrNoRows) {
			return "", api.NewError(api.KindValidation, "category %d does not exist", *input.CategoryID)
		}
		if err != nil {
			return "", storeErr("create record", err)
		}
		if initials != "" {
			return initials, nil
		}
	}
	initials, _ := normalizeInitials("", input.Name)
	return initials, nil
}

func nextSKU(tx *sql.Tx, prefix string) (string, error) {
	rows, err := tx.Query("SELECT sku FROM products WHERE sku LIKE ?", prefix+"-%")
	if err != nil {
		return "", storeErr("create record", err)
	}
	defer rows.Close()

	highest := 0
	for rows.Next() {
		var sku string
		if err := rows.Scan(&sku); err != nil {
			return "", storeErr("create record", err)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(sku, prefix+"-"))
		if err == nil && n > highest {
			highest = n
		}
	}
	if err := rows.Err(); err != nil {
		return "", storeErr("create record", err)
	}
	return fmt.Sprintf("%s-%04d", prefix, highest+1), nil
}

func replaceLinks(tx *sql.Tx, id int, input api.RecordInput) error {
	links := []struct {
		kind api.RefKind
		ids  []int
	}{
		{api.RefTag, input.TagIDs},
		{api.RefMaterial, input.MaterialIDs},
	}
	for _, l := range links {
		_, join, column := refTable(l.kind)
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE product_id = ?", join), id); err != nil {
			return storeErr("link "+l.kind.String(), err)
		}
		seen := map[int]bool{}
		for _, refID := range l.ids {
			if seen[refID] {
				continue
			}
			seen[refID] = true
			stmt := fmt.Sprintf("INSERT INTO %s (product_id, %s) VALUES (?, ?)", join, column)
			if _, err := tx.Exec(stmt, id, refID); err != nil {
				err = storeErr("link "+l.kind.String(), err)
				if api.KindOf(err) == api.KindValidation {
					return api.NewError(api.KindValidation, "%s %d does not exist", l.kind, refID)
				}
				return err
			}
		}
	}
	return nil
}

func (s *Store) loadRecords(where string, args ...any) ([]api.Record, error) {
	rows, err := s.db.Query(`SELECT `+recordColumns+`
		FROM products p LEFT JOIN categories c ON c.id = p.category_id `+where+` ORDER BY p.id`, args...)
	if err != nil {
		return nil, storeErr("list records", err)
	}

	records := []api.Record{}
	index := map[int]int{}
	for rows.Next() {
		var (
			rec                           api.Record
			desc, catName, catInitials    sql.NullString
			color, printTime              sql.NullString
			catID, weight, stock, reorder sql.NullInt64
			unitCost, sellingPrice        sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.SKU, &rec.Name, &desc, &catID, &catName, &catInitials,
			&rec.Production, &color, &printTime, &weight, &stock, &reorder, &unitCost,
			&sellingPrice, &rec.Active); err != nil {
			rows.Close()
			return nil, storeErr("list records", err)
		}
		rec.Description = nullString(desc)
		rec.CategoryID = nullInt(catID)
		if rec.CategoryID != nil {
			rec.Category = &api.Reference{ID: *rec.CategoryID, Name: catName.String, SKUInitials: catInitials.String}
		}
		rec.Color = nullString(color)
		rec.PrintTime = nullString(printTime)
		rec.Weight = nullInt(weight)
		rec.StockQuantity = nullInt(stock)
		rec.ReorderPoint = nullInt(reorder)
		rec.UnitCost = nullInt(unitCost)
		rec.SellingPrice = nullInt(sellingPrice)
		rec.Tags = []api.Reference{}
		rec.Materials = []api.Reference{}
		index[rec.ID] = len(records)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, storeErr("list records", err)
	}
	rows.Close()

	for _, kind := range []api.RefKind{api.RefTag, api.RefMaterial} {
		if err := s.attachLinks(records, index, kind); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (s *Store) attachLinks(records []api.Record, index map[int]int, kind api.RefKind) error {
	if len(records) == 0 {
		return nil
	}
	table, join, column := refTable(kind)
	rows, err := s.db.Query(fmt.Sprintf(`SELECT j.product_id, r.id, r.name FROM %s j
		JOIN %s r ON r.id = j.%s ORDER BY r.name COLLATE NOCASE`, join, table, column))
	if err != nil {
		return storeErr("list "+table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int
		var ref api.Reference
		if err := rows.Scan(&productID, &ref.ID, &ref.Name); err != nil {
			return storeErr("list "+table, err)
		}
		i, ok := index[productID]
		if !ok {
			continue
		}
		if kind == api.RefTag {
			records[i].Tags = append(records[i].Tags, ref)
		} else {
			records[i].Materials = append(records[i].Materials, ref)
		}
	}
	return storeErr("list "+table, rows.Err())
}
