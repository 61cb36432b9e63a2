package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gravitrone/printdb/internal/api"

	_ "modernc.org/sqlite"
)

// Store is a catalog kept in a single SQLite file. It satisfies the same
// contract as the REST client so the interface can run without a service.
type Store struct {
	db   *sql.DB
	path string
}

var _ api.Catalog = (*Store)(nil)

// Open creates or opens the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// One connection keeps PRAGMA foreign_keys in effect for every statement.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure store: %w", err)
		}
	}
	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return s, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE COLLATE NOCASE,
			sku_initials TEXT NOT NULL DEFAULT '',
			description TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS tags (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE COLLATE NOCASE
		);`,
		`CREATE TABLE IF NOT EXISTS materials (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE COLLATE NOCASE
		);`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sku TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			description TEXT,
			category_id INTEGER REFERENCES categories(id),
			production INTEGER NOT NULL DEFAULT 1,
			color TEXT,
			print_time TEXT,
			weight INTEGER,
			stock_quantity INTEGER,
			reorder_point INTEGER,
			unit_cost INTEGER,
			selling_price INTEGER,
			active INTEGER NOT NULL DEFAULT 1
		);`,
		`CREATE TABLE IF NOT EXISTS product_tags (
			product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			tag_id INTEGER NOT NULL REFERENCES tags(id),
			PRIMARY KEY(product_id, tag_id)
		);`,
		`CREATE TABLE IF NOT EXISTS product_materials (
			product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			material_id INTEGER NOT NULL REFERENCES materials(id),
			PRIMARY KEY(product_id, material_id)
		);`,
	}
	for _, st := range stmts {
		if _, err := s.db.Exec(st); err != nil {
			return err
		}
	}
	return nil
}

// storeErr converts database failures into catalog errors.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &api.Error{Kind: api.KindNotFound, Message: op + ": not found", Err: err}
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return &api.Error{Kind: api.KindConflict, Code: "duplicate", Message: op + ": already exists", Err: err}
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return &api.Error{Kind: api.KindValidation, Message: op + ": unknown reference", Err: err}
	}
	return &api.Error{Kind: api.KindTransport, Message: fmt.Sprintf("%s: %v", op, err), Err: err}
}

// refTable maps a kind onto its table and the join table column.
func refTable(kind api.RefKind) (table, join, column string) {
	switch kind {
	case api.RefTag:
		return "tags", "product_tags", "tag_id"
	case api.RefMaterial:
		return "materials", "product_materials", "material_id"
	default:
		return "categories", "products", "category_id"
	}
}
