package pgsql

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/cashit_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrations holds the schema for the kv_blobs table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that holds the files.
const MigrationsDir = "migrations"

// PgxKVStore keeps ledger blobs in the kv_blobs table.
type PgxKVStore struct {
	pool *pgxpool.Pool
}

// NewPgxKVStore creates a store over an open pool. The store owns the pool from then on.
func NewPgxKVStore(pool *pgxpool.Pool) *PgxKVStore {
	return &PgxKVStore{pool: pool}
}

var _ portsrepo.KVStore = (*PgxKVStore)(nil)

func (r *PgxKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_blobs WHERE key = $1;`

	var value []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return value, nil
}

func (r *PgxKVStore) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

func (r *PgxKVStore) Delete(ctx context.Context, key string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM kv_blobs WHERE key = $1;`, key); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

func (r *PgxKVStore) Close() error {
	r.pool.Close()
	return nil
}
