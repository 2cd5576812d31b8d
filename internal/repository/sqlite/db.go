package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/carlosebw/crudify/database"
)

// Open opens (or creates) the sqlite database at path and applies migrations.
// ":memory:" skips directory creation.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// a single writer; an in-memory database also lives on one connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := database.MigrateSQLite(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite db: %w", err)
	}

	return db, nil
}
