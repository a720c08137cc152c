package chi

import (
	"net/http"
	"strconv"

	"github.com/marcelsud/library-api/page"
)

/* Listing endpoints share the page/size/sort query parameters and the
 * response envelope carrying the pagination metadata.
 */

// pageResponse is the wire shape of one page of results.
type pageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func newPageResponse[E, T any](p page.Page[E], convert func(E) T) pageResponse[T] {
	content := make([]T, 0, len(p.Items))
	for _, item := range p.Items {
		content = append(content, convert(item))
	}
	return pageResponse[T]{
		Content:       content,
		Page:          p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

// parsePageRequest reads page, size and sort from the query string.
// Malformed numbers fall back to the defaults rather than erroring.
func parsePageRequest(r *http.Request, fallbackSort page.Sort) page.Request {
	q := r.URL.Query()

	number, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	return page.Request{
		Number: number,
		Size:   size,
		Sort:   page.ParseSort(q.Get("sort"), fallbackSort),
	}.Normalize()
}
