// Package postgres opens and configures the shared database pool used
// by the per-resource repositories.
package postgres

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Pool defaults, tuned for a small API instance.
const (
	DefaultMaxOpenConns   = 25
	DefaultMaxIdleConns   = 5
	DefaultConnMaxLifeMin = 5
)

// Open connects to PostgreSQL with the default pool configuration.
func Open(connectionString string) (*sql.DB, error) {
	return OpenWithPoolConfig(connectionString, DefaultMaxOpenConns, DefaultMaxIdleConns, DefaultConnMaxLifeMin)
}

// OpenWithPoolConfig connects to PostgreSQL with a customizable pool.
// maxOpenConns: maximum simultaneous connections (0 = unlimited)
// maxIdleConns: maximum idle connections kept in the pool
// maxLifeMinutes: maximum minutes a connection may be reused
func OpenWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return db, nil
}
