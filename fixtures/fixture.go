package fixtures

import "fmt"

/* Fixture data shapes for fixtures.yaml. Books reference authors by
 * name so the file stays readable; the seeder resolves names to the
 * store-assigned IDs after inserting the authors.
 */

// Author is a seed author entry.
type Author struct {
	Name string `yaml:"name"`
	Age  int    `yaml:"age"`
}

// Validate checks a seed author entry.
func (a *Author) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("author name cannot be empty")
	}
	if a.Age < 0 {
		return fmt.Errorf("author %s: age cannot be negative", a.Name)
	}
	return nil
}

// Book is a seed book entry. Author is optional and must match the
// name of an author listed in the same file.
type Book struct {
	ISBN   string `yaml:"isbn"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Validate checks a seed book entry.
func (b *Book) Validate() error {
	if b.ISBN == "" {
		return fmt.Errorf("book isbn cannot be empty")
	}
	if b.Title == "" {
		return fmt.Errorf("book %s: title cannot be empty", b.ISBN)
	}
	return nil
}
