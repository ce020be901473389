package book

import (
	"context"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

// DeleteBookCommand identifies the book to remove.
type DeleteBookCommand struct {
	ISBN string
}

// DeleteBookUseCase removes a book from the catalog.
type DeleteBookUseCase struct {
	repo      book.Repository
	listeners listeners
}

func NewDeleteBookUseCase(repo book.Repository, ls ...book.ModifiedListener) *DeleteBookUseCase {
	return &DeleteBookUseCase{repo: repo, listeners: ls}
}

// Execute loads the book first so the event can carry its title, then
// deletes it. A missing book surfaces as a not-found error rather than a
// silent no-op.
func (uc *DeleteBookUseCase) Execute(ctx context.Context, cmd DeleteBookCommand) error {
	isbn, err := book.NewISBN(cmd.ISBN)
	if err != nil {
		return err
	}

	b, err := uc.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, isbn); err != nil {
		return err
	}

	uc.listeners.notify(ctx, book.Deleted(b.Title(), b.ISBN()))
	return nil
}
