package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wealthwise/internal/common"
)

// sqlStore implements Store over database/sql. The sqlite and postgres
// backends share it and differ only in driver, placeholder style, and
// migrations.
type sqlStore struct {
	db     *sql.DB
	rebind func(query string) string
}

// rebindDollar converts ?-style placeholders to $1, $2, ... for postgres.
func rebindDollar(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, error) {
	query := s.rebind(`SELECT value FROM records WHERE key = ?`)

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return value, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	query := s.rebind(`
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`)

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *sqlStore) Delete(ctx context.Context, key string) error {
	query := s.rebind(`DELETE FROM records WHERE key = ?`)

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// escapeLike neutralizes LIKE metacharacters so the prefix is matched
// literally. Emails may legitimately contain underscores.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (s *sqlStore) List(ctx context.Context, prefix string) ([]string, error) {
	query := s.rebind(`SELECT key FROM records WHERE key LIKE ? ESCAPE '\'`)

	rows, err := s.db.QueryContext(ctx, query, escapeLike(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return keys, nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
