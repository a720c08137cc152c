package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcelsud/library-api/author"
	"github.com/marcelsud/library-api/page"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Repository implements author.Repository on PostgreSQL via database/sql.
type Repository struct {
	DB *sql.DB
}

// NewRepository wraps an already-opened pool. See the postgres package
// for pool configuration.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

/* sortColumns is the allowlist of sortable fields. Sort fields come
 * from the query string, so they are mapped to known columns instead of
 * being interpolated directly.
 */
var sortColumns = map[string]string{
	"id":   "id",
	"name": "name",
	"age":  "age",
}

// Select returns one author by ID.
func (r *Repository) Select(ctx context.Context, id int64) (author.Author, error) {
	query := "SELECT id, name, age FROM authors WHERE id = $1"

	var (
		a    author.Author
		name sql.NullString
		age  sql.NullInt64
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&a.ID, &name, &age)
	if err == sql.ErrNoRows {
		return author.Author{}, author.ErrNotFound
	}
	if err != nil {
		return author.Author{}, fmt.Errorf("selecting author: %w", err)
	}
	a.Name = name.String
	a.Age = int(age.Int64)

	return a, nil
}

// SelectAll returns every author, ordered by ID.
func (r *Repository) SelectAll(ctx context.Context) ([]author.Author, error) {
	query := "SELECT id, name, age FROM authors ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting authors: %w", err)
	}
	defer rows.Close()

	authors, err := scanAuthors(rows)
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// SelectPage returns one page of authors and the total count.
func (r *Repository) SelectPage(ctx context.Context, req page.Request) ([]author.Author, int64, error) {
	var total int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM authors").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting authors: %w", err)
	}

	column, ok := sortColumns[req.Sort.Field]
	if !ok {
		column = "id"
	}
	direction := "ASC"
	if req.Sort.Desc {
		direction = "DESC"
	}
	// column and direction are allowlisted values, never raw input
	query := fmt.Sprintf(
		"SELECT id, name, age FROM authors ORDER BY %s %s, id LIMIT $1 OFFSET $2",
		column, direction,
	)

	rows, err := r.DB.QueryContext(ctx, query, req.Size, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("selecting authors page: %w", err)
	}
	defer rows.Close()

	authors, err := scanAuthors(rows)
	if err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

// Exists reports whether an author with the given ID is stored.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	query := "SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)"

	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking author existence: %w", err)
	}
	return exists, nil
}

// Insert stores a new author and returns the sequence-assigned ID.
func (r *Repository) Insert(ctx context.Context, a author.Author) (int64, error) {
	query := `
		INSERT INTO authors (name, age)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, a.Name, a.Age).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting author: %w", err)
	}

	return id, nil
}

// Upsert inserts or fully replaces the author identified by a.ID.
func (r *Repository) Upsert(ctx context.Context, a author.Author) error {
	query := `
		INSERT INTO authors (id, name, age)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, age = EXCLUDED.age
	`

	if _, err := r.DB.ExecContext(ctx, query, a.ID, a.Name, a.Age); err != nil {
		return fmt.Errorf("upserting author: %w", err)
	}
	return nil
}

/* Delete removes an author by ID. RowsAffected is deliberately not
 * checked: deleting an absent author is a no-op, so repeated deletes
 * stay idempotent.
 */
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM authors WHERE id = $1"

	if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}
	return nil
}

// Close closes the underlying pool.
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

// CreateTable creates the authors table (used by cmd/seed and tests).
func (r *Repository) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS authors (
			id BIGSERIAL PRIMARY KEY,
			name TEXT,
			age INTEGER
		)
	`

	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating authors table: %w", err)
	}
	return nil
}

// DropTable removes the authors table (used by tests).
func (r *Repository) DropTable(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, "DROP TABLE IF EXISTS authors CASCADE"); err != nil {
		return fmt.Errorf("dropping authors table: %w", err)
	}
	return nil
}

func scanAuthors(rows *sql.Rows) ([]author.Author, error) {
	var authors []author.Author
	for rows.Next() {
		var (
			a    author.Author
			name sql.NullString
			age  sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &name, &age); err != nil {
			return nil, fmt.Errorf("scanning author: %w", err)
		}
		a.Name = name.String
		a.Age = int(age.Int64)
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating authors: %w", err)
	}
	return authors, nil
}
