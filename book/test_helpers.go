package book

import "github.com/stretchr/testify/mock"

// MatchBook creates a custom matcher for book arguments in mocks.
func MatchBook(matcher func(Book) bool) interface{} {
	return mock.MatchedBy(matcher)
}
