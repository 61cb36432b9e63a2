package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gravitrone/printdb/internal/api"
)

// ListReferences returns every reference of kind ordered by name.
func (s *Store) ListReferences(kind api.RefKind) ([]api.Reference, error) {
	table, _, _ := refTable(kind)
	query := fmt.Sprintf("SELECT id, name FROM %s ORDER BY name COLLATE NOCASE", table)
	if kind == api.RefCategory {
		query = "SELECT id, name, sku_initials, description FROM categories ORDER BY name COLLATE NOCASE"
	}
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, storeErr("list "+table, err)
	}
	defer rows.Close()

	out := []api.Reference{}
	for rows.Next() {
		var ref api.Reference
		if kind == api.RefCategory {
			var desc sql.NullString
			if err := rows.Scan(&ref.ID, &ref.Name, &ref.SKUInitials, &desc); err != nil {
				return nil, storeErr("list "+table, err)
			}
			ref.Description = nullString(desc)
		} else if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, storeErr("list "+table, err)
		}
		out = append(out, ref)
	}
	return out, storeErr("list "+table, rows.Err())
}

// CreateReference inserts a reference. Names are unique per kind, ignoring
// case.
func (s *Store) CreateReference(kind api.RefKind, input api.ReferenceInput) (*api.Reference, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, api.NewError(api.KindValidation, "%s name is required", kind)
	}
	table, _, _ := refTable(kind)

	var res sql.Result
	var err error
	ref := api.Reference{Name: name}
	if kind == api.RefCategory {
		initials, ierr := normalizeInitials(input.SKUInitials, name)
		if ierr != nil {
			return nil, ierr
		}
		ref.SKUInitials = initials
		var desc any
		if d := strings.TrimSpace(input.Description); d != "" {
			desc = d
			ref.Description = &d
		}
		res, err = s.db.Exec("INSERT INTO categories (name, sku_initials, description) VALUES (?, ?, ?)", name, initials, desc)
	} else {
		res, err = s.db.Exec(fmt.Sprintf("INSERT INTO %s (name) VALUES (?)", table), name)
	}
	if err != nil {
		err = storeErr("create "+kind.String(), err)
		if api.KindOf(err) == api.KindConflict {
			return nil, &api.Error{Kind: api.KindConflict, Code: "duplicate", Message: fmt.Sprintf("%s %q already exists", kind, name), Err: err}
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr("create "+kind.String(), err)
	}
	ref.ID = int(id)
	return &ref, nil
}

// DeleteReference removes a reference that no record uses.
func (s *Store) DeleteReference(kind api.RefKind, id int) error {
	table, join, column := refTable(kind)

	var name string
	if err := s.db.QueryRow(fmt.Sprintf("SELECT name FROM %s WHERE id = ?", table), id).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return api.NewError(api.KindNotFound, "%s %d not found", kind, id)
		}
		return storeErr("delete "+kind.String(), err)
	}

	var uses int
	if err := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", join, column), id).Scan(&uses); err != nil {
		return storeErr("delete "+kind.String(), err)
	}
	if uses > 0 {
		return &api.Error{
			Kind:    api.KindInUse,
			Code:    "in_use",
			Message: fmt.Sprintf("%s %q is used by %d record(s)", kind, name, uses),
		}
	}

	if _, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id); err != nil {
		return storeErr("delete "+kind.String(), err)
	}
	return nil
}

// normalizeInitials upper-cases explicit initials or derives them from the
// category name.
func normalizeInitials(initials, name string) (string, error) {
	initials = strings.ToUpper(strings.TrimSpace(initials))
	if initials == "" {
		for _, r := range strings.ToUpper(name) {
			if unicode.IsLetter(r) && r < unicode.MaxASCII {
				initials += string(r)
			}
			if len(initials) == 3 {
				break
			}
		}
		if initials == "" {
			initials = "PRD"
		}
		return initials, nil
	}
	if len(initials) > 3 {
		return "", api.NewError(api.KindValidation, "sku initials must be at most 3 letters")
	}
	for _, r := range initials {
		if r < 'A' || r > 'Z' {
			return "", api.NewError(api.KindValidation, "sku initials must be letters")
		}
	}
	return initials, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func nullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}
