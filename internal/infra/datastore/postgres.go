package datastore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const documentRowID = 1

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS site_data (
	id         integer PRIMARY KEY,
	data       jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`
	selectSQL = `SELECT data FROM site_data WHERE id = $1`
	upsertSQL = `INSERT INTO site_data (id, data, updated_at) VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
)

// PostgresBackend stores the document in a single jsonb row.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

func NewPostgresBackend(ctx context.Context, pool *pgxpool.Pool) (*PostgresBackend, error) {
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		return nil, err
	}
	return &PostgresBackend{pool: pool}, nil
}

func (b *PostgresBackend) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := b.pool.QueryRow(ctx, selectSQL, documentRowID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *PostgresBackend) Save(ctx context.Context, data []byte) error {
	_, err := b.pool.Exec(ctx, upsertSQL, documentRowID, string(data))
	return err
}

// Close is a no-op; the pool is owned by whoever created it.
func (b *PostgresBackend) Close() error { return nil }
