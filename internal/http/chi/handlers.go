package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/library-api/author"
	"github.com/marcelsud/library-api/book"
	"github.com/marcelsud/library-api/metrics"
)

// Handlers sets up the REST API routes.
// The exporter is optional; without it no metrics are recorded.
func Handlers(ctx context.Context, authorService author.UseCase, bookService book.UseCase, exporter *metrics.OTelExporter) *chi.Mux {
	logger := httplog.NewLogger("library-api", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	if exporter != nil {
		r.Use(exporter.Middleware())
		r.Method(http.MethodGet, "/metrics", exporter.ServeHTTP())
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Method(http.MethodPost, "/authors", postAuthor(authorService))
	r.Method(http.MethodGet, "/authors", getAuthors(authorService))
	r.Method(http.MethodGet, "/authors/{id}", getAuthor(authorService))
	r.Method(http.MethodPut, "/authors/{id}", putAuthor(authorService))
	r.Method(http.MethodPatch, "/authors/{id}", patchAuthor(authorService))
	r.Method(http.MethodDelete, "/authors/{id}", deleteAuthor(authorService))

	r.Method(http.MethodGet, "/books", getBooks(bookService))
	r.Method(http.MethodGet, "/books/{isbn}", getBook(bookService))
	r.Method(http.MethodPut, "/books/{isbn}", putBook(bookService))
	r.Method(http.MethodPatch, "/books/{isbn}", patchBook(bookService))
	r.Method(http.MethodDelete, "/books/{isbn}", deleteBook(bookService))

	return r
}
