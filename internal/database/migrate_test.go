package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/database"
	"github.com/BuzzLyutic/todo-api/internal/testutil"
)

func TestMigrate_Idempotent(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.Migrate(ctx, pool, zap.NewNop()))
	require.NoError(t, database.Migrate(ctx, pool, zap.NewNop()))

	var columns []string
	rows, err := pool.Query(ctx, `
		SELECT column_name FROM information_schema.columns
		WHERE table_name = 'todos'
		ORDER BY ordinal_position
	`)
	require.NoError(t, err)
	for rows.Next() {
		var c string
		require.NoError(t, rows.Scan(&c))
		columns = append(columns, c)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"id", "content", "is_completed"}, columns)

	var indexed bool
	err = pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE tablename = 'todos' AND indexname = 'ix_todos_content')",
	).Scan(&indexed)
	require.NoError(t, err)
	assert.True(t, indexed)
}

func TestTxProvider_RollbackDiscardsWrites(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()

	p, err := database.BeginTxProvider(ctx, pool)
	require.NoError(t, err)

	err = database.WithSession(ctx, p, func(s database.Session) error {
		_, err := s.Exec(ctx, "INSERT INTO todos (content) VALUES ('scratch')")
		return err
	})
	require.NoError(t, err)
	require.NoError(t, p.Rollback(ctx))

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM todos WHERE content = 'scratch'").Scan(&count))
	assert.Zero(t, count)
}

func TestPoolProvider_ReturnsConnection(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	p := database.NewPoolProvider(pool)

	for i := 0; i < 3; i++ {
		err := database.WithSession(ctx, p, func(s database.Session) error {
			var one int
			return s.QueryRow(ctx, "SELECT 1").Scan(&one)
		})
		require.NoError(t, err)
	}
	assert.Zero(t, pool.Stat().AcquiredConns())
}
