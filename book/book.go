package book

import (
	"errors"

	"github.com/marcelsud/library-api/author"
)

/* Book represents a book as the business sees it.
 * The ISBN is the natural identifier: it is supplied by the client and
 * there is no surrogate key, so the same ISBN always addresses the same
 * logical record.
 */
type Book struct {
	ISBN  string
	Title string
	/* Author is the optional reference to the writer. It stays nil when
	 * no author was attached, or when the referenced author no longer
	 * exists - orphaned references are tolerated, nothing cascades.
	 */
	Author *author.Author
}

// ErrNotFound is returned when the requested book does not exist.
var ErrNotFound = errors.New("book not found")

/* Patch carries a partial book update. A nil field means "leave the
 * stored value untouched". The ISBN is never part of a patch; it is
 * pinned to the key the caller addressed.
 */
type Patch struct {
	Title  *string
	Author *author.Author
}

// Apply merges the non-nil patch fields onto a stored book.
func (p Patch) Apply(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = p.Author
	}
	return b
}
