// Package testutil starts the PostgreSQL instance integration tests run against.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/config"
	"github.com/BuzzLyutic/todo-api/internal/database"
)

// SetupTestDB returns a migrated pool that is closed when the test finishes.
// It connects to TODO_TEST_DATABASE_URL when set and otherwise starts a
// throwaway postgres container, skipping the test if neither is available.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}
	ctx := context.Background()

	connStr, err := config.TestDatabaseURL()
	if err != nil {
		t.Fatalf("Failed to read test database config: %v", err)
	}
	terminate := func() {}

	if connStr == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)

		pgContainer, err := postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			t.Fatalf("Failed to start postgres container: %v", err)
		}
		terminate = func() {
			if err := pgContainer.Terminate(ctx); err != nil {
				t.Errorf("Failed to terminate container: %v", err)
			}
		}

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			terminate()
			t.Fatalf("Failed to get connection string: %v", err)
		}
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		terminate()
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		terminate()
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := database.Migrate(ctx, pool, zap.NewNop()); err != nil {
		pool.Close()
		terminate()
		t.Fatalf("Failed to migrate database: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		terminate()
	})
	return pool
}

// TxProvider opens a transaction-bound session provider that is rolled back
// when the test finishes.
func TxProvider(t *testing.T, pool *pgxpool.Pool) *database.TxProvider {
	t.Helper()
	ctx := context.Background()

	p, err := database.BeginTxProvider(ctx, pool)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	t.Cleanup(func() {
		if err := p.Rollback(ctx); err != nil {
			t.Errorf("Failed to roll back transaction: %v", err)
		}
	})
	return p
}
