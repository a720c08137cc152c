//go:build !integration

package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/marcelsud/library-api/author"
	"github.com/marcelsud/library-api/book"
	"github.com/marcelsud/library-api/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectBookQuery = `SELECT b.isbn, b.title, a.id, a.name, a.age
	FROM books b
	LEFT JOIN authors a ON a.id = b.author_id
	WHERE b.isbn = $1`

func TestRepository_Select_Unit(t *testing.T) {
	t.Run("select book with a stored author", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		rows := sqlmock.NewRows([]string{"isbn", "title", "id", "name", "age"}).
			AddRow("isbn-1", "The Hobbit", 1, "Tolkien", 100)

		mock.ExpectQuery(regexp.QuoteMeta(selectBookQuery)).
			WithArgs("isbn-1").WillReturnRows(rows)

		b, err := repo.Select(ctx, "isbn-1")

		require.NoError(t, err)
		assert.Equal(t, "isbn-1", b.ISBN)
		assert.Equal(t, "The Hobbit", b.Title)
		require.NotNil(t, b.Author)
		assert.Equal(t, "Tolkien", b.Author.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dangling author reference resolves to nil author", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		rows := sqlmock.NewRows([]string{"isbn", "title", "id", "name", "age"}).
			AddRow("isbn-2", "Orphaned", nil, nil, nil)

		mock.ExpectQuery(regexp.QuoteMeta(selectBookQuery)).
			WithArgs("isbn-2").WillReturnRows(rows)

		b, err := repo.Select(ctx, "isbn-2")

		require.NoError(t, err)
		assert.Nil(t, b.Author)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("select non-existent book returns ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		rows := sqlmock.NewRows([]string{"isbn", "title", "id", "name", "age"})

		mock.ExpectQuery(regexp.QuoteMeta(selectBookQuery)).
			WithArgs("missing").WillReturnRows(rows)

		_, err = repo.Select(ctx, "missing")

		require.Error(t, err)
		assert.Equal(t, book.ErrNotFound, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SelectPage_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &Repository{DB: db}
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM books`,
	)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	rows := sqlmock.NewRows([]string{"isbn", "title", "id", "name", "age"}).
		AddRow("isbn-1", "Book 1", 1, "Author 1", 40).
		AddRow("isbn-2", "Book 2", nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT b.isbn, b.title, a.id, a.name, a.age
		FROM books b
		LEFT JOIN authors a ON a.id = b.author_id
		ORDER BY b.isbn ASC, b.isbn
		LIMIT $1 OFFSET $2`,
	)).WithArgs(2, 0).WillReturnRows(rows)

	books, total, err := repo.SelectPage(ctx, page.Request{Number: 0, Size: 2, Sort: page.Sort{Field: "isbn"}})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Equal(t, 2, len(books))
	require.NotNil(t, books[0].Author)
	assert.Nil(t, books[1].Author)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Exists_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &Repository{DB: db}
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`,
	)).WithArgs("isbn-1").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(ctx, "isbn-1")

	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_Unit(t *testing.T) {
	t.Run("persists the author id when an author is set", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		mock.ExpectExec(regexp.QuoteMeta(
			`INSERT INTO books (isbn, title, author_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (isbn) DO UPDATE SET title = EXCLUDED.title, author_id = EXCLUDED.author_id`,
		)).WithArgs("isbn-1", "The Hobbit", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Upsert(ctx, book.Book{
			ISBN:   "isbn-1",
			Title:  "The Hobbit",
			Author: &author.Author{ID: 1, Name: "Tolkien"},
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("persists NULL author_id when no author is set", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		mock.ExpectExec(regexp.QuoteMeta(
			`INSERT INTO books (isbn, title, author_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (isbn) DO UPDATE SET title = EXCLUDED.title, author_id = EXCLUDED.author_id`,
		)).WithArgs("isbn-2", "No Author", nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Upsert(ctx, book.Book{ISBN: "isbn-2", Title: "No Author"})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Delete_Unit(t *testing.T) {
	t.Run("delete existing book", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		mock.ExpectExec(regexp.QuoteMeta(
			`DELETE FROM books WHERE isbn = $1`,
		)).WithArgs("isbn-1").WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Delete(ctx, "isbn-1")

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete non-existent book is not an error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &Repository{DB: db}
		ctx := context.Background()

		mock.ExpectExec(regexp.QuoteMeta(
			`DELETE FROM books WHERE isbn = $1`,
		)).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.Delete(ctx, "missing")

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
