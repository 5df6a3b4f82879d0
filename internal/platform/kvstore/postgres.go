// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores each aggregate as one row in the kv_entries table
// (see data/migrations). It exists for installations that already operate
// PostgreSQL and want backups/replication to cover the catalog too.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps an already-connected pgx pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Get implements [Store].
func (store *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	query := `SELECT value FROM kv_entries WHERE key = $1`
	err := store.pool.QueryRow(ctx, query, key).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: postgres get %q: %w", key, err)
	}

	return value, nil
}

// Set implements [Store].
func (store *Postgres) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := store.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("kvstore: postgres set %q: %w", key, err)
	}
	return nil
}

// Remove implements [Store].
func (store *Postgres) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries WHERE key = $1`
	if _, err := store.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("kvstore: postgres remove %q: %w", key, err)
	}
	return nil
}
