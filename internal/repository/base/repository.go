package base

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the querier surface shared by *pgxpool.Pool and pgx.Tx. Repositories
// run on the pool by default; WithTx rebinds them to a transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository carries the shared connection pool and the common query
// helpers the concrete repositories embed.
type Repository struct {
	pool *pgxpool.Pool
	db   DB
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return Repository{pool: pool, db: pool}
}

// WithTx returns a copy whose statements run on the given querier, so a
// service can include repository calls in its own transaction.
func (r Repository) WithTx(db DB) Repository {
	return Repository{pool: r.pool, db: db}
}

func (r Repository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r Repository) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	return r.db.QueryRow(ctx, query, args...)
}

func (r Repository) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	return r.db.Query(ctx, query, args...)
}

// Exec runs a command, discarding the affected-row count.
func (r Repository) Exec(ctx context.Context, query string, args ...any) error {
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

// ExecAffected runs a command and returns the number of affected rows.
func (r Repository) ExecAffected(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// IsNotFound reports whether the error is pgx's no-rows result.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
