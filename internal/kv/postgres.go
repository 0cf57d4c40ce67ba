package kv

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	pgmigrations "github.com/dmitrijs2005/wealthwise/internal/kv/migrations/postgres"
)

// NewPostgres connects to a postgres-backed Store using the given pgx DSN
// and runs the embedded migrations.
func NewPostgres(ctx context.Context, dsn string) (Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	goose.SetBaseFS(pgmigrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &sqlStore{db: db, rebind: rebindDollar}, nil
}
