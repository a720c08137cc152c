package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-api/author"
	"github.com/marcelsud/library-api/page"
)

/* Wire representations of an author. Separate from the domain entity
 * so the persisted shape and the JSON shape can evolve independently;
 * the conversion functions below replace any reflection-based mapping.
 */

// authorRequest represents an author in a POST or PUT body.
// Unknown fields are ignored by the decoder.
type authorRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// authorPatchRequest represents a PATCH body. Pointer fields
// distinguish "absent" from the zero value: absent keys leave the
// stored value untouched.
type authorPatchRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// authorResponse represents an author in API responses.
type authorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func (ar authorRequest) toEntity() author.Author {
	return author.Author{
		ID:   ar.ID,
		Name: ar.Name,
		Age:  ar.Age,
	}
}

func (ap authorPatchRequest) toPatch() author.Patch {
	return author.Patch{
		Name: ap.Name,
		Age:  ap.Age,
	}
}

func toAuthorResponse(a author.Author) authorResponse {
	return authorResponse{
		ID:   a.ID,
		Name: a.Name,
		Age:  a.Age,
	}
}

// defaultAuthorSort orders listings by the store-assigned key.
var defaultAuthorSort = page.Sort{Field: "id"}

// postAuthor handles POST /authors: always creates, responds 201 with
// the stored representation including the assigned id.
func postAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ar authorRequest
		if err := json.NewDecoder(r.Body).Decode(&ar); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		saved, err := authorService.Save(r.Context(), ar.toEntity())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toAuthorResponse(saved))
	})
}

// getAuthors handles GET /authors: paged listing.
func getAuthors(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := parsePageRequest(r, defaultAuthorSort)
		p, err := authorService.ListPage(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, newPageResponse(p, toAuthorResponse))
	})
}

// getAuthor handles GET /authors/{id}: 200 with the author, 404 with
// an empty body when absent.
func getAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := authorID(w, r)
		if !ok {
			return
		}
		a, err := authorService.Get(r.Context(), id)
		if errors.Is(err, author.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAuthorResponse(a))
	})
}

/* putAuthor handles PUT /authors/{id}: full overwrite of an existing
 * author. Never creates - author creation is POST-only - so an absent
 * id is a 404. The identifier is pinned to the path, whatever the
 * body carries.
 */
func putAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := authorID(w, r)
		if !ok {
			return
		}
		var ar authorRequest
		if err := json.NewDecoder(r.Body).Decode(&ar); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		exists, err := authorService.Exists(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		entity := ar.toEntity()
		entity.ID = id
		saved, err := authorService.Save(r.Context(), entity)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAuthorResponse(saved))
	})
}

// patchAuthor handles PATCH /authors/{id}: merge the supplied fields
// onto the stored author, 404 when the id is absent.
func patchAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := authorID(w, r)
		if !ok {
			return
		}
		var ap authorPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&ap); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		merged, err := authorService.PartialUpdate(r.Context(), id, ap.toPatch())
		if errors.Is(err, author.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAuthorResponse(merged))
	})
}

// deleteAuthor handles DELETE /authors/{id}: 204 whether or not the
// author existed.
func deleteAuthor(authorService author.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := authorID(w, r)
		if !ok {
			return
		}
		if err := authorService.Delete(r.Context(), id); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// authorID parses the {id} path parameter, writing a 400 on failure.
func authorID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid author id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// headers are already out; nothing sensible left to do
		return
	}
}
