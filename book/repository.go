package book

import (
	"context"

	"github.com/marcelsud/library-api/page"
)

/* Small interfaces, composed. See the author package for the same
 * layout keyed by a store-assigned ID instead of a natural key.
 */

// Reader provides read operations for books.
type Reader interface {
	// Select returns the book with the given ISBN, or ErrNotFound.
	// The author reference is materialized when it still resolves.
	Select(ctx context.Context, isbn string) (Book, error)
	// SelectPage returns one page of books plus the total count.
	SelectPage(ctx context.Context, req page.Request) ([]Book, int64, error)
	// Exists is the cheap existence probe used to pick status codes.
	Exists(ctx context.Context, isbn string) (bool, error)
}

// Writer provides write operations for books.
type Writer interface {
	/* Upsert inserts the book when the ISBN is absent and fully
	 * replaces it when present, in one statement.
	 */
	Upsert(ctx context.Context, b Book) error
	// Delete removes the book if present. Absence is a no-op.
	Delete(ctx context.Context, isbn string) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
