package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/storage/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations brings the client database schema up to date using the
// embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the client database at dsn, runs
// migrations and returns a ready Store.
func InitDatabase(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return NewSQLiteStore(db), nil
}
