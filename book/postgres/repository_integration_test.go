//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/marcelsud/library-api/author"
	"github.com/marcelsud/library-api/book"
	"github.com/marcelsud/library-api/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Execute with: go test -tags=integration ./book/postgres/...
// Requires a local Docker daemon.

// newISBN generates a unique key so subtests sharing a container never
// collide on the primary key.
func newISBN() string {
	return "isbn-" + uuid.NewString()
}

func TestPostgresRepository_Upsert_Integration(t *testing.T) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	CreateTestSchema(t, ctx, pgContainer.DB)

	repo := NewRepository(pgContainer.DB)

	t.Run("upsert inserts when absent and replaces when present", func(t *testing.T) {
		isbn := newISBN()

		err := repo.Upsert(ctx, book.Book{ISBN: isbn, Title: "First Edition"})
		require.NoError(t, err)

		exists, err := repo.Exists(ctx, isbn)
		require.NoError(t, err)
		assert.True(t, exists)

		err = repo.Upsert(ctx, book.Book{ISBN: isbn, Title: "Second Edition"})
		require.NoError(t, err)

		b, err := repo.Select(ctx, isbn)
		require.NoError(t, err)
		assert.Equal(t, "Second Edition", b.Title)
	})

	t.Run("upsert persists the author reference", func(t *testing.T) {
		authorID := InsertTestAuthor(t, ctx, pgContainer.DB, "Tolkien", 100)
		isbn := newISBN()

		err := repo.Upsert(ctx, book.Book{
			ISBN:   isbn,
			Title:  "The Hobbit",
			Author: &author.Author{ID: authorID},
		})
		require.NoError(t, err)

		b, err := repo.Select(ctx, isbn)
		require.NoError(t, err)
		require.NotNil(t, b.Author)
		assert.Equal(t, authorID, b.Author.ID)
		assert.Equal(t, "Tolkien", b.Author.Name)
	})
}

func TestPostgresRepository_Select_Integration(t *testing.T) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	CreateTestSchema(t, ctx, pgContainer.DB)

	repo := NewRepository(pgContainer.DB)

	t.Run("select non-existent book returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Select(ctx, newISBN())

		require.Error(t, err)
		assert.Equal(t, book.ErrNotFound, err)
	})

	t.Run("deleting the author leaves the book with a nil author", func(t *testing.T) {
		authorID := InsertTestAuthor(t, ctx, pgContainer.DB, "Soon Gone", 55)
		isbn := newISBN()

		err := repo.Upsert(ctx, book.Book{
			ISBN:   isbn,
			Title:  "Orphaned",
			Author: &author.Author{ID: authorID},
		})
		require.NoError(t, err)

		DeleteTestAuthor(t, ctx, pgContainer.DB, authorID)

		b, err := repo.Select(ctx, isbn)
		require.NoError(t, err)
		assert.Equal(t, "Orphaned", b.Title)
		assert.Nil(t, b.Author)
	})
}

func TestPostgresRepository_SelectPage_Integration(t *testing.T) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	CreateTestSchema(t, ctx, pgContainer.DB)

	repo := NewRepository(pgContainer.DB)

	t.Run("pages sorted by title carry the total", func(t *testing.T) {
		titles := []string{"Aleph", "Baudolino", "Cosmicomics"}
		for _, title := range titles {
			require.NoError(t, repo.Upsert(ctx, book.Book{ISBN: newISBN(), Title: title}))
		}

		books, total, err := repo.SelectPage(ctx, page.Request{Number: 0, Size: 2, Sort: page.Sort{Field: "title"}})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Equal(t, 2, len(books))
		assert.Equal(t, "Aleph", books[0].Title)
		assert.Equal(t, "Baudolino", books[1].Title)
	})
}

func TestPostgresRepository_Delete_Integration(t *testing.T) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	CreateTestSchema(t, ctx, pgContainer.DB)

	repo := NewRepository(pgContainer.DB)

	t.Run("delete is idempotent", func(t *testing.T) {
		isbn := newISBN()
		require.NoError(t, repo.Upsert(ctx, book.Book{ISBN: isbn, Title: "Gone Soon"}))

		require.NoError(t, repo.Delete(ctx, isbn))

		exists, err := repo.Exists(ctx, isbn)
		require.NoError(t, err)
		assert.False(t, exists)

		// second delete of the same ISBN is a no-op
		require.NoError(t, repo.Delete(ctx, isbn))
	})
}
