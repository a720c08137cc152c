package author

import (
	"context"
	"fmt"

	"github.com/marcelsud/library-api/page"
)

/* Service represents the business logic layer.
 * Uses pointer semantics as it's an API, not data.
 */

// UseCase defines the business operations for author management.
type UseCase interface {
	Save(ctx context.Context, a Author) (Author, error)
	List(ctx context.Context) ([]Author, error)
	ListPage(ctx context.Context, req page.Request) (page.Page[Author], error)
	Get(ctx context.Context, id int64) (Author, error)
	Exists(ctx context.Context, id int64) (bool, error)
	PartialUpdate(ctx context.Context, id int64, p Patch) (Author, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	Repo Repository
}

// NewService creates a new author service with dependency injection.
func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

/* Save persists an author. With a zero ID the store assigns one and the
 * returned author carries it; with a non-zero ID the record is inserted
 * or fully replaced.
 */
func (s *Service) Save(ctx context.Context, a Author) (Author, error) {
	if a.ID == 0 {
		id, err := s.Repo.Insert(ctx, a)
		if err != nil {
			return Author{}, fmt.Errorf("inserting author: %w", err)
		}
		a.ID = id
		return a, nil
	}
	if err := s.Repo.Upsert(ctx, a); err != nil {
		return Author{}, fmt.Errorf("saving author: %w", err)
	}
	return a, nil
}

// List returns all authors, unpaged. Intended for internal callers.
func (s *Service) List(ctx context.Context) ([]Author, error) {
	all, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting authors: %w", err)
	}
	return all, nil
}

// ListPage returns one page of authors with pagination metadata.
func (s *Service) ListPage(ctx context.Context, req page.Request) (page.Page[Author], error) {
	req = req.Normalize()
	items, total, err := s.Repo.SelectPage(ctx, req)
	if err != nil {
		return page.Page[Author]{}, fmt.Errorf("selecting authors page: %w", err)
	}
	return page.New(items, req, total), nil
}

// Get returns the author with the given ID, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (Author, error) {
	a, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Author{}, fmt.Errorf("selecting author: %w", err)
	}
	return a, nil
}

// Exists reports whether an author with the given ID is stored.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("checking author existence: %w", err)
	}
	return ok, nil
}

/* PartialUpdate merges the non-nil patch fields onto the stored author
 * and persists the result. The ID is pinned to the id argument so a
 * payload can never change a record's identity. Returns ErrNotFound
 * when the id has no stored record.
 */
func (s *Service) PartialUpdate(ctx context.Context, id int64, p Patch) (Author, error) {
	existing, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Author{}, fmt.Errorf("selecting author for update: %w", err)
	}
	merged := p.Apply(existing)
	merged.ID = id
	if err := s.Repo.Upsert(ctx, merged); err != nil {
		return Author{}, fmt.Errorf("saving merged author: %w", err)
	}
	return merged, nil
}

// Delete removes the author. Absence of the target is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}
	return nil
}
