package author

import "errors"

/* Author represents a writer as the business sees it.
 * Uses value semantics as it represents data, not behavior.
 * The ID is assigned by the store on first save and immutable afterwards.
 */
type Author struct {
	ID   int64
	Name string
	Age  int
}

// ErrNotFound is returned when the requested author does not exist.
var ErrNotFound = errors.New("author not found")

/* Patch carries a partial author update. A nil field means "leave the
 * stored value untouched"; the ID is never part of a patch, it is always
 * pinned to the key the caller addressed.
 */
type Patch struct {
	Name *string
	Age  *int
}

// Apply merges the non-nil patch fields onto a stored author.
func (p Patch) Apply(a Author) Author {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	return a
}
