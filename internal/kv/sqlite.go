package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	sqlitemigrations "github.com/dmitrijs2005/wealthwise/internal/kv/migrations/sqlite"
)

// NewSQLite opens (creating if necessary) a sqlite-backed Store at dsn and
// runs the embedded migrations. This is the default local backend: the chat
// client works out of the box without any external storage service.
func NewSQLite(ctx context.Context, dsn string) (Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(sqlitemigrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &sqlStore{db: db, rebind: func(q string) string { return q }}, nil
}
