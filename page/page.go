package page

import "strings"

/* Explicit pagination values instead of a framework paging object.
 * Both resources share these types, so any storage backend can
 * reproduce the same metadata.
 */

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Sort describes the requested ordering of a listing.
type Sort struct {
	Field string
	Desc  bool
}

// ParseSort parses the "field" or "field,desc" query format.
// An empty value falls back to the given default.
func ParseSort(raw string, fallback Sort) Sort {
	if raw == "" {
		return fallback
	}
	field, dir, found := strings.Cut(raw, ",")
	field = strings.TrimSpace(field)
	if field == "" {
		return fallback
	}
	s := Sort{Field: field}
	if found {
		s.Desc = strings.EqualFold(strings.TrimSpace(dir), "desc")
	}
	return s
}

// Request selects one page of a listing.
type Request struct {
	Number int // zero-based page index
	Size   int
	Sort   Sort
}

// Normalize clamps the request to sane bounds.
func (r Request) Normalize() Request {
	if r.Number < 0 {
		r.Number = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	return r
}

// Offset returns the number of records to skip for this page.
func (r Request) Offset() int {
	return r.Number * r.Size
}

// Page is one page of items plus the metadata needed to reconstruct
// the pagination on the client side.
type Page[T any] struct {
	Items         []T
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

// New builds a Page from the items of one request and the total count.
func New[T any](items []T, req Request, total int64) Page[T] {
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Items:         items,
		Number:        req.Number,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
