// Package database owns the PostgreSQL connection pool, the todos schema and
// the request-scoped sessions repositories run their queries through.
package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/config"
)

const pingTimeout = 10 * time.Second

// New opens the pool described by cfg and pings it once.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	dsn, err := DSN(cfg.DatabaseURL, cfg.SSLMode)
	if err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MaxConnLifetime = cfg.ConnRecycle()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("connected to the database",
		zap.String("host", poolCfg.ConnConfig.Host),
		zap.String("database", poolCfg.ConnConfig.Database),
		zap.Int32("max_conns", poolCfg.MaxConns),
		zap.Duration("conn_max_lifetime", poolCfg.MaxConnLifetime),
	)
	return pool, nil
}

// DSN sets sslmode on a postgres:// URL unless the URL already carries one.
func DSN(rawURL, sslMode string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("unsupported database url scheme %q", u.Scheme)
	}

	q := u.Query()
	if q.Get("sslmode") == "" && sslMode != "" {
		q.Set("sslmode", sslMode)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
