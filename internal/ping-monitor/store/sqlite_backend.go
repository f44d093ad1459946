package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS storage_items (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

type sqliteBackend struct {
	db *sql.DB
}

func (s *sqliteBackend) Load(ctx context.Context, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT key, value FROM storage_items WHERE key IN (%s)", placeholders), args...)
	if err != nil {
		return nil, fmt.Errorf("sqliteBackend.Load: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var value []byte
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("sqliteBackend.Load: %w", err)
		}
		out[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("sqliteBackend.Load: %w", err)
	}
	return out, nil
}

func (s *sqliteBackend) Save(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqliteBackend.Save: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO storage_items (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("sqliteBackend.Save: %w", err)
	}
	defer stmt.Close()
	now := time.Now().UnixMilli()
	for k, v := range values {
		if _, err = stmt.ExecContext(ctx, k, v, now); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("sqliteBackend.Save: %w", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqliteBackend.Save: %w", err)
	}
	return nil
}

func (s *sqliteBackend) Close() error {
	return s.db.Close()
}

// NewSQLiteBackend creates the storage table if needed. db must use the modernc "sqlite" driver.
func NewSQLiteBackend(ctx context.Context, db *sql.DB) (Backend, error) {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("NewSQLiteBackend: %w", err)
	}
	return &sqliteBackend{db: db}, nil
}
