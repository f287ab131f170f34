// Package postgres backs the blob-store boundary with a Postgres table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nxtbus/nxtbus-go/internal/repository"
)

const dialTimeout = 3 * time.Second

// Store implements the kv.Store interface over a single blobs table.
type Store struct {
	pool *pgxpool.Pool
}

type Options struct {
	DSN      string
	MaxConns int32
}

// Open builds the connection pool and pings it before handing back a
// store. The store owns the pool; release it with Close.
func Open(ctx context.Context, opts Options) (*Store, error) {
	const op = "repository.postgres.Open"

	poolCfg, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if opts.MaxConns > 0 {
		poolCfg.MaxConns = opts.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the blobs table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const op = "repository.postgres.EnsureSchema"

	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS blobs (
			key        text PRIMARY KEY,
			value      bytea NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "repository.postgres.Get"

	var val []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM blobs WHERE key = $1`, key).Scan(&val)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}
	return val, true, nil
}

func (s *Store) Put(ctx context.Context, key string, val []byte) error {
	const op = "repository.postgres.Put"

	_, err := s.pool.Exec(ctx, `
		INSERT INTO blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, val)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	const op = "repository.postgres.Delete"

	if _, err := s.pool.Exec(ctx, `DELETE FROM blobs WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}
	return nil
}

func translateDBErr(err error) error {
	if err == nil {
		return nil
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		// unique_violation
		if pge.Code == "23505" {
			return repository.ErrConflict
		}
	}

	return err
}
