package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcelsud/library-api/author"
	"github.com/marcelsud/library-api/book"
	"github.com/marcelsud/library-api/page"
	_ "github.com/lib/pq" // PostgreSQL driver
)

/* Repository implements book.Repository on PostgreSQL via database/sql.
 *
 * books.author_id carries the reference to authors.id without a foreign
 * key constraint: deleting an author leaves its books with a dangling
 * reference, which reads resolve to a nil author.
 */
type Repository struct {
	DB *sql.DB
}

// NewRepository wraps an already-opened pool. See the postgres package
// for pool configuration.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// sortColumns is the allowlist of sortable fields.
var sortColumns = map[string]string{
	"isbn":  "b.isbn",
	"title": "b.title",
}

const selectColumns = `b.isbn, b.title, a.id, a.name, a.age`

// Select returns one book by ISBN, with its author reference
// materialized when the referenced author still exists.
func (r *Repository) Select(ctx context.Context, isbn string) (book.Book, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM books b
		LEFT JOIN authors a ON a.id = b.author_id
		WHERE b.isbn = $1
	`

	b, err := scanBook(r.DB.QueryRowContext(ctx, query, isbn))
	if err == sql.ErrNoRows {
		return book.Book{}, book.ErrNotFound
	}
	if err != nil {
		return book.Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return b, nil
}

// SelectPage returns one page of books and the total count.
func (r *Repository) SelectPage(ctx context.Context, req page.Request) ([]book.Book, int64, error) {
	var total int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting books: %w", err)
	}

	column, ok := sortColumns[req.Sort.Field]
	if !ok {
		column = "b.isbn"
	}
	direction := "ASC"
	if req.Sort.Desc {
		direction = "DESC"
	}
	// column and direction are allowlisted values, never raw input
	query := fmt.Sprintf(`
		SELECT `+selectColumns+`
		FROM books b
		LEFT JOIN authors a ON a.id = b.author_id
		ORDER BY %s %s, b.isbn
		LIMIT $1 OFFSET $2
	`, column, direction)

	rows, err := r.DB.QueryContext(ctx, query, req.Size, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("selecting books page: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating books: %w", err)
	}

	return books, total, nil
}

// Exists reports whether a book with the given ISBN is stored.
func (r *Repository) Exists(ctx context.Context, isbn string) (bool, error) {
	query := "SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)"

	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, isbn).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking book existence: %w", err)
	}
	return exists, nil
}

// Upsert inserts the book when the ISBN is absent and fully replaces it
// when present. Only the author's ID is persisted; the author row
// itself is never written from here.
func (r *Repository) Upsert(ctx context.Context, b book.Book) error {
	query := `
		INSERT INTO books (isbn, title, author_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (isbn) DO UPDATE SET title = EXCLUDED.title, author_id = EXCLUDED.author_id
	`

	var authorID sql.NullInt64
	if b.Author != nil {
		authorID = sql.NullInt64{Int64: b.Author.ID, Valid: true}
	}

	if _, err := r.DB.ExecContext(ctx, query, b.ISBN, b.Title, authorID); err != nil {
		return fmt.Errorf("upserting book: %w", err)
	}
	return nil
}

/* Delete removes a book by ISBN. RowsAffected is deliberately not
 * checked: deleting an absent book is a no-op, so repeated deletes
 * stay idempotent.
 */
func (r *Repository) Delete(ctx context.Context, isbn string) error {
	query := "DELETE FROM books WHERE isbn = $1"

	if _, err := r.DB.ExecContext(ctx, query, isbn); err != nil {
		return fmt.Errorf("deleting book: %w", err)
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

// CreateTable creates the books table (used by cmd/seed and tests).
// author_id intentionally has no foreign key constraint.
func (r *Repository) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS books (
			isbn TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			author_id BIGINT
		)
	`

	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating books table: %w", err)
	}
	return nil
}

// DropTable removes the books table (used by tests).
func (r *Repository) DropTable(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, "DROP TABLE IF EXISTS books CASCADE"); err != nil {
		return fmt.Errorf("dropping books table: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (book.Book, error) {
	var (
		b        book.Book
		authorID sql.NullInt64
		name     sql.NullString
		age      sql.NullInt64
	)
	if err := row.Scan(&b.ISBN, &b.Title, &authorID, &name, &age); err != nil {
		return book.Book{}, err
	}
	if authorID.Valid {
		b.Author = &author.Author{
			ID:   authorID.Int64,
			Name: name.String,
			Age:  int(age.Int64),
		}
	}
	return b, nil
}
