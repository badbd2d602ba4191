// Package postgres implements the durable store for pipeline entities.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	// Querier is the subset of pgxpool.Pool the repository needs.
	Querier interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

type Repository struct {
	db      Querier
	metrics Metrics
}

// OpenPool opens a pgx pool for the DSN. The pool is shared between the
// repository and the durable queue.
func OpenPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// NewRepository wraps an open querier in a Repository.
func NewRepository(db Querier, metrics Metrics) (*Repository, error) {
	if db == nil {
		return nil, errors.New("repository db is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}
	return &Repository{db: db, metrics: metrics}, nil
}
