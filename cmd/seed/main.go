package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/marcelsud/library-api/author"
	authorpg "github.com/marcelsud/library-api/author/postgres"
	"github.com/marcelsud/library-api/book"
	bookpg "github.com/marcelsud/library-api/book/postgres"
	"github.com/marcelsud/library-api/config"
	"github.com/marcelsud/library-api/fixtures"
	"github.com/marcelsud/library-api/postgres"
)

/* seed creates the schema and loads the fixture file through the same
 * service operations the API uses, so seeded data goes through the
 * exact save/upsert paths a client would exercise.
 */
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fixturesPath := flag.String("fixtures", "", "path to the fixtures YAML file (default: FIXTURES_PATH)")
	flag.Parse()

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	path := cfg.FixturesPath
	if *fixturesPath != "" {
		path = *fixturesPath
	}

	loader := fixtures.NewLoader()
	if err := loader.Load(path); err != nil {
		return err
	}

	db, err := postgres.OpenWithPoolConfig(
		cfg.DatabaseURL,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
		cfg.DBConnMaxLifeMinutes,
	)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()

	authorRepo := authorpg.NewRepository(db)
	bookRepo := bookpg.NewRepository(db)
	if err := authorRepo.CreateTable(ctx); err != nil {
		return err
	}
	if err := bookRepo.CreateTable(ctx); err != nil {
		return err
	}

	authorService := author.NewService(authorRepo)
	bookService := book.NewService(bookRepo)

	// insert authors first and remember name -> assigned id for the
	// book references
	ids := make(map[string]int64, len(loader.Authors()))
	for _, fa := range loader.Authors() {
		saved, err := authorService.Save(ctx, author.Author{Name: fa.Name, Age: fa.Age})
		if err != nil {
			return err
		}
		ids[fa.Name] = saved.ID
	}

	for _, fb := range loader.Books() {
		b := book.Book{Title: fb.Title}
		if fb.Author != "" {
			id := ids[fb.Author]
			a, err := authorService.Get(ctx, id)
			if err != nil {
				return err
			}
			b.Author = &a
		}
		if _, err := bookService.Upsert(ctx, fb.ISBN, b); err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %d authors and %d books from %s\n",
		len(loader.Authors()), len(loader.Books()), path)
	return nil
}
