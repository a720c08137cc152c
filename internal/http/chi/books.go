package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-api/book"
	"github.com/marcelsud/library-api/page"
)

/* Wire representations of a book. The nested author keeps the
 * "authorEntity" key of the public contract.
 */

// bookRequest represents a book in a PUT body. The isbn field is
// accepted but the path value is authoritative.
type bookRequest struct {
	ISBN   string         `json:"isbn"`
	Title  string         `json:"title"`
	Author *authorRequest `json:"authorEntity"`
}

// bookPatchRequest represents a PATCH body. Pointer fields distinguish
// "absent" from the zero value.
type bookPatchRequest struct {
	Title  *string        `json:"title"`
	Author *authorRequest `json:"authorEntity"`
}

// bookResponse represents a book in API responses.
type bookResponse struct {
	ISBN   string          `json:"isbn"`
	Title  string          `json:"title"`
	Author *authorResponse `json:"authorEntity"`
}

func (br bookRequest) toEntity() book.Book {
	b := book.Book{
		ISBN:  br.ISBN,
		Title: br.Title,
	}
	if br.Author != nil {
		a := br.Author.toEntity()
		b.Author = &a
	}
	return b
}

func (bp bookPatchRequest) toPatch() book.Patch {
	p := book.Patch{
		Title: bp.Title,
	}
	if bp.Author != nil {
		a := bp.Author.toEntity()
		p.Author = &a
	}
	return p
}

func toBookResponse(b book.Book) bookResponse {
	resp := bookResponse{
		ISBN:  b.ISBN,
		Title: b.Title,
	}
	if b.Author != nil {
		ar := toAuthorResponse(*b.Author)
		resp.Author = &ar
	}
	return resp
}

// defaultBookSort orders listings by the natural key.
var defaultBookSort = page.Sort{Field: "isbn"}

/* putBook handles PUT /books/{isbn}: upsert keyed by the path isbn.
 * The existence probe runs before the write on purpose - that is what
 * decides 201 vs 200, and probing afterwards would always report
 * "exists". Two concurrent PUTs to a fresh isbn can both see "absent"
 * and both answer 201; the second write simply replaces the first.
 */
func putBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isbn := chi.URLParam(r, "isbn")
		var br bookRequest
		if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		exists, err := bookService.Exists(r.Context(), isbn)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		saved, err := bookService.Upsert(r.Context(), isbn, br.toEntity())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		status := http.StatusCreated
		if exists {
			status = http.StatusOK
		}
		writeJSON(w, status, toBookResponse(saved))
	})
}

// patchBook handles PATCH /books/{isbn}: merge the supplied fields
// onto the stored book, 404 when the isbn is absent.
func patchBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isbn := chi.URLParam(r, "isbn")
		var bp bookPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&bp); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		exists, err := bookService.Exists(r.Context(), isbn)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		merged, err := bookService.PartialUpdate(r.Context(), isbn, bp.toPatch())
		if errors.Is(err, book.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toBookResponse(merged))
	})
}

// getBooks handles GET /books: paged listing.
func getBooks(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := parsePageRequest(r, defaultBookSort)
		p, err := bookService.ListPage(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, newPageResponse(p, toBookResponse))
	})
}

// getBook handles GET /books/{isbn}: 200 with the book, 404 with an
// empty body when absent.
func getBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isbn := chi.URLParam(r, "isbn")
		b, err := bookService.Get(r.Context(), isbn)
		if errors.Is(err, book.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toBookResponse(b))
	})
}

// deleteBook handles DELETE /books/{isbn}: 204 whether or not the
// book existed.
func deleteBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isbn := chi.URLParam(r, "isbn")
		if err := bookService.Delete(r.Context(), isbn); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
