package book

import (
	"github.com/luismlg/casfid-technical-test/pkg/collection"
)

// Collection is an ordered sequence of books. Insertion order is preserved
// (repositories return it sorted by creation time, newest first) and nil
// entries are rejected at add time, so a row that failed to hydrate can never
// travel further up the stack.
type Collection struct {
	*collection.Collection[*Book]
}

// NewCollection builds a collection from the given books, failing fast on nil
// entries.
func NewCollection(books ...*Book) (*Collection, error) {
	inner, err := collection.NewValidated(validateBook, books...)
	if err != nil {
		return nil, err
	}
	return &Collection{Collection: inner}, nil
}

func validateBook(b *Book) error {
	if b == nil {
		return ErrNilBook
	}
	return nil
}
