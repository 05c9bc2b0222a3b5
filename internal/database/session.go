package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Session is the handle a single request issues its queries through.
type Session interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionProvider hands out sessions. The returned release func must be
// called exactly once when the caller is done with the session.
type SessionProvider interface {
	Acquire(ctx context.Context) (Session, func(), error)
}

// WithSession runs fn with a freshly acquired session and releases it on
// every exit path, panics included.
func WithSession(ctx context.Context, p SessionProvider, fn func(Session) error) error {
	s, release, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return fn(s)
}

// PoolProvider backs each session with its own pooled connection.
type PoolProvider struct {
	pool *pgxpool.Pool
}

// NewPoolProvider returns a provider drawing sessions from pool.
func NewPoolProvider(pool *pgxpool.Pool) *PoolProvider {
	return &PoolProvider{pool: pool}
}

// Acquire checks a connection out of the pool. The release func returns it.
func (p *PoolProvider) Acquire(ctx context.Context) (Session, func(), error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("acquire connection: %w", err)
	}
	return conn, conn.Release, nil
}

// TxProvider binds every session to one open transaction, so whatever the
// sessions wrote disappears on Rollback. Sessions share the transaction and
// must not be used concurrently.
type TxProvider struct {
	tx pgx.Tx
}

// BeginTxProvider opens the transaction the returned provider hands out.
// The caller must call Rollback once it is done.
func BeginTxProvider(ctx context.Context, pool *pgxpool.Pool) (*TxProvider, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &TxProvider{tx: tx}, nil
}

// Acquire returns the shared transaction. Release is a no-op.
func (p *TxProvider) Acquire(ctx context.Context) (Session, func(), error) {
	return p.tx, func() {}, nil
}

// Rollback discards everything written through the provider's sessions.
func (p *TxProvider) Rollback(ctx context.Context) error {
	return p.tx.Rollback(ctx)
}
