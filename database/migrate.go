// Package database owns the schema of the users table and applies it with goose.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrations embed.FS

const (
	postgresDir = "migrations/postgres"
	sqliteDir   = "migrations/sqlite"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies the postgres migrations to the database behind dsn.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	return up(db, "postgres", postgresDir)
}

// MigrateSQLite applies the sqlite migrations using an open handle.
func MigrateSQLite(db *sql.DB) error {
	return up(db, "sqlite3", sqliteDir)
}

func up(db *sql.DB, dialect, dir string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// SetLogger routes goose output to l.
func SetLogger(l goose.Logger) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(l)
}
