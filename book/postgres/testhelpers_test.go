//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultDatabase = "testdb"
	defaultUser     = "testuser"
	defaultPassword = "testpass"
)

// PostgresContainer bundles the container with an open pool.
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *sql.DB
	ConnStr   string
}

// SetupPostgresContainer starts a throwaway PostgreSQL container and
// returns it with a verified connection. Requires a local Docker daemon.
func SetupPostgresContainer(t *testing.T, ctx context.Context) (*PostgresContainer, func()) {
	t.Helper()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(defaultDatabase),
		postgres.WithUsername(defaultUser),
		postgres.WithPassword(defaultPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)

	err = db.PingContext(ctx)
	require.NoError(t, err)

	container := &PostgresContainer{
		Container: pgContainer,
		DB:        db,
		ConnStr:   connStr,
	}

	cleanup := func() {
		if db != nil {
			_ = db.Close()
		}
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
	}

	return container, cleanup
}

// CreateTestSchema creates the books table plus the authors table it
// joins against.
func CreateTestSchema(t *testing.T, ctx context.Context, db *sql.DB) {
	t.Helper()

	repo := NewRepository(db)
	require.NoError(t, repo.CreateTable(ctx))

	authorsSchema := `
		CREATE TABLE IF NOT EXISTS authors (
			id BIGSERIAL PRIMARY KEY,
			name TEXT,
			age INTEGER
		)
	`
	_, err := db.ExecContext(ctx, authorsSchema)
	require.NoError(t, err)
}

// InsertTestAuthor stores an author row and returns its assigned ID.
func InsertTestAuthor(t *testing.T, ctx context.Context, db *sql.DB, name string, age int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(ctx,
		"INSERT INTO authors (name, age) VALUES ($1, $2) RETURNING id",
		name, age,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// DeleteTestAuthor removes an author row directly, leaving any books
// that reference it dangling.
func DeleteTestAuthor(t *testing.T, ctx context.Context, db *sql.DB, id int64) {
	t.Helper()

	_, err := db.ExecContext(ctx, "DELETE FROM authors WHERE id = $1", id)
	require.NoError(t, err)
}

// AssertBookCount checks how many books are stored.
func AssertBookCount(t *testing.T, ctx context.Context, db *sql.DB, expected int) {
	t.Helper()

	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, expected, count)
}
