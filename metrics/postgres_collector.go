package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresCollector implements the Collector interface with plain
// COUNT(*) queries against the catalog tables.
type PostgresCollector struct {
	db *sql.DB
}

// NewPostgresCollector creates a new PostgreSQL metrics collector.
func NewPostgresCollector(db *sql.DB) *PostgresCollector {
	return &PostgresCollector{db: db}
}

// Collect gathers the current record counts.
func (c *PostgresCollector) Collect(ctx context.Context) (Counts, error) {
	authors, err := c.count(ctx, "authors")
	if err != nil {
		return Counts{}, fmt.Errorf("counting authors: %w", err)
	}

	books, err := c.count(ctx, "books")
	if err != nil {
		return Counts{}, fmt.Errorf("counting books: %w", err)
	}

	return Counts{
		Authors:   authors,
		Books:     books,
		Timestamp: time.Now(),
	}, nil
}

func (c *PostgresCollector) count(ctx context.Context, table string) (int64, error) {
	// table is one of the two fixed catalog tables, never raw input
	var n int64
	err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
