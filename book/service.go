package book

import (
	"context"
	"fmt"

	"github.com/marcelsud/library-api/page"
)

// UseCase defines the business operations for book management.
type UseCase interface {
	Exists(ctx context.Context, isbn string) (bool, error)
	Upsert(ctx context.Context, isbn string, b Book) (Book, error)
	PartialUpdate(ctx context.Context, isbn string, p Patch) (Book, error)
	ListPage(ctx context.Context, req page.Request) (page.Page[Book], error)
	Get(ctx context.Context, isbn string) (Book, error)
	Delete(ctx context.Context, isbn string) error
}

type Service struct {
	Repo Repository
}

// NewService creates a new book service with dependency injection.
func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

// Exists reports whether a book with the given ISBN is stored.
func (s *Service) Exists(ctx context.Context, isbn string) (bool, error) {
	ok, err := s.Repo.Exists(ctx, isbn)
	if err != nil {
		return false, fmt.Errorf("checking book existence: %w", err)
	}
	return ok, nil
}

/* Upsert pins the book's ISBN to the path value and unconditionally
 * inserts or replaces the record. Callers that need to distinguish
 * "created" from "replaced" must probe Exists before calling this:
 * checking afterwards would always report "exists".
 */
func (s *Service) Upsert(ctx context.Context, isbn string, b Book) (Book, error) {
	b.ISBN = isbn
	if err := s.Repo.Upsert(ctx, b); err != nil {
		return Book{}, fmt.Errorf("upserting book: %w", err)
	}
	return b, nil
}

/* PartialUpdate merges the non-nil patch fields onto the stored book
 * and persists the result, keeping the ISBN pinned to the path value.
 * Returns ErrNotFound when the ISBN has no stored record.
 */
func (s *Service) PartialUpdate(ctx context.Context, isbn string, p Patch) (Book, error) {
	existing, err := s.Repo.Select(ctx, isbn)
	if err != nil {
		return Book{}, fmt.Errorf("selecting book for update: %w", err)
	}
	merged := p.Apply(existing)
	merged.ISBN = isbn
	if err := s.Repo.Upsert(ctx, merged); err != nil {
		return Book{}, fmt.Errorf("saving merged book: %w", err)
	}
	return merged, nil
}

// ListPage returns one page of books with pagination metadata.
func (s *Service) ListPage(ctx context.Context, req page.Request) (page.Page[Book], error) {
	req = req.Normalize()
	items, total, err := s.Repo.SelectPage(ctx, req)
	if err != nil {
		return page.Page[Book]{}, fmt.Errorf("selecting books page: %w", err)
	}
	return page.New(items, req, total), nil
}

// Get returns the book with the given ISBN, or ErrNotFound.
func (s *Service) Get(ctx context.Context, isbn string) (Book, error) {
	b, err := s.Repo.Select(ctx, isbn)
	if err != nil {
		return Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return b, nil
}

// Delete removes the book. Absence of the target is not an error.
func (s *Service) Delete(ctx context.Context, isbn string) error {
	if err := s.Repo.Delete(ctx, isbn); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return nil
}
