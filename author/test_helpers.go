package author

import "github.com/stretchr/testify/mock"

// MatchAuthor creates a custom matcher for author arguments in mocks.
func MatchAuthor(matcher func(Author) bool) interface{} {
	return mock.MatchedBy(matcher)
}
