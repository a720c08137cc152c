package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

/* Loader reads the fixture file used by cmd/seed. Kept separate from
 * the seeding itself so the parsing and validation can be tested
 * without a database.
 */

// File represents the structure of fixtures.yaml.
type File struct {
	Authors []Author `yaml:"authors"`
	Books   []Book   `yaml:"books"`
}

// Loader holds the loaded fixtures.
type Loader struct {
	authors []Author
	books   []Book
}

// NewLoader creates an empty fixture loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the fixtures YAML file, validating every entry
// and checking that book author references resolve.
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading fixtures file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing fixtures YAML: %w", err)
	}

	names := make(map[string]bool, len(file.Authors))
	for i := range file.Authors {
		if err := file.Authors[i].Validate(); err != nil {
			return fmt.Errorf("validating author fixture: %w", err)
		}
		if names[file.Authors[i].Name] {
			return fmt.Errorf("duplicate author fixture: %s", file.Authors[i].Name)
		}
		names[file.Authors[i].Name] = true
	}

	isbns := make(map[string]bool, len(file.Books))
	for i := range file.Books {
		b := &file.Books[i]
		if err := b.Validate(); err != nil {
			return fmt.Errorf("validating book fixture: %w", err)
		}
		if isbns[b.ISBN] {
			return fmt.Errorf("duplicate book fixture: %s", b.ISBN)
		}
		isbns[b.ISBN] = true
		if b.Author != "" && !names[b.Author] {
			return fmt.Errorf("book %s references unknown author %q", b.ISBN, b.Author)
		}
	}

	l.authors = file.Authors
	l.books = file.Books
	return nil
}

// Authors returns the loaded author fixtures.
func (l *Loader) Authors() []Author {
	return l.authors
}

// Books returns the loaded book fixtures.
func (l *Loader) Books() []Book {
	return l.books
}
