package author

import (
	"context"

	"github.com/marcelsud/library-api/page"
)

/* Small, focused interfaces following "The Go Way".
 * Interfaces abstract behavior, not things, and are written for the
 * users of the API, not just for testing.
 */

// Reader provides read operations for authors.
type Reader interface {
	/* Context is always the first parameter in functions that do I/O.
	 * This allows for cancellation, timeouts, and shared values.
	 */
	Select(ctx context.Context, id int64) (Author, error)
	SelectAll(ctx context.Context) ([]Author, error)
	// SelectPage returns one page of authors plus the total count.
	SelectPage(ctx context.Context, req page.Request) ([]Author, int64, error)
	// Exists is the cheap existence probe used to pick status codes.
	Exists(ctx context.Context, id int64) (bool, error)
}

// Writer provides write operations for authors.
type Writer interface {
	// Insert stores a new author and returns the store-assigned ID.
	Insert(ctx context.Context, a Author) (int64, error)
	// Upsert inserts or fully replaces the author identified by a.ID.
	Upsert(ctx context.Context, a Author) error
	/* Delete removes the author if present. Deleting an absent ID is
	 * a no-op, not an error.
	 */
	Delete(ctx context.Context, id int64) error
}

/* Interface composition - combining small interfaces into larger ones
 * is preferred over large monolithic interfaces.
 */
type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
