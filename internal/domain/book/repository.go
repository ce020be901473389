package book

import (
	"context"
)

// Repository is the persistence port for the book aggregate.
// Design notes:
// 1. Declared in the domain layer, implemented in infrastructure (dependency
//    inversion), so use cases stay testable against in-memory fakes.
// 2. Save is an upsert keyed on the ISBN: it inserts a new row or overwrites
//    every non-key column of the existing one, bumping the update timestamp.
// 3. Delete is a no-op when the ISBN is absent; callers that need not-found
//    semantics check existence first.
type Repository interface {
	// Save inserts or overwrites the book keyed by its ISBN.
	Save(ctx context.Context, b *Book) error

	// FindByISBN returns the book for isbn, or ErrNotFound.
	FindByISBN(ctx context.Context, isbn ISBN) (*Book, error)

	// Exists reports whether a book with isbn is stored.
	Exists(ctx context.Context, isbn ISBN) (bool, error)

	// Delete removes the book for isbn. Absent ISBNs are ignored.
	Delete(ctx context.Context, isbn ISBN) error

	// FindAll returns every book ordered by creation time, newest first.
	FindAll(ctx context.Context) (*Collection, error)

	// Search returns the books whose title, author or description contains
	// term (case-insensitive), ordered by creation time, newest first.
	Search(ctx context.Context, term string) (*Collection, error)
}
