package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/server/migrations"
	"github.com/dmitrijs2005/authshell/internal/server/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// initUserRepository selects the account store: an empty DSN yields the
// in-memory repository (development default), otherwise PostgreSQL with
// migrations applied at startup.
func initUserRepository(ctx context.Context, dsn string) (users.Repository, error) {
	if dsn == "" {
		return users.NewMemoryRepository(), nil
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return users.NewPostgresRepository(db), nil
}
