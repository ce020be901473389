package book

import (
	"context"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

// CreateBookCommand carries the raw input for registering a new book.
type CreateBookCommand struct {
	Title    string
	Author   string
	ISBN     string
	Year     int
	CoverURL string
}

// CreateBookUseCase registers a new book in the catalog. The description
// always comes from the configured provider, never from the caller.
type CreateBookUseCase struct {
	repo      book.Repository
	provider  book.DescriptionProvider
	listeners listeners
}

func NewCreateBookUseCase(repo book.Repository, provider book.DescriptionProvider, ls ...book.ModifiedListener) *CreateBookUseCase {
	return &CreateBookUseCase{
		repo:      repo,
		provider:  provider,
		listeners: ls,
	}
}

// Execute validates the command, rejects duplicate ISBNs, enriches the
// book with an external description and persists it. Listeners are
// notified only after the write has succeeded.
func (uc *CreateBookUseCase) Execute(ctx context.Context, cmd CreateBookCommand) error {
	title, err := book.NewTitle(cmd.Title)
	if err != nil {
		return err
	}
	author, err := book.NewAuthor(cmd.Author)
	if err != nil {
		return err
	}
	isbn, err := book.NewISBN(cmd.ISBN)
	if err != nil {
		return err
	}
	year, err := book.NewYear(cmd.Year)
	if err != nil {
		return err
	}

	exists, err := uc.repo.Exists(ctx, isbn)
	if err != nil {
		return err
	}
	if exists {
		return book.ErrAlreadyExists
	}

	description := uc.provider.DescriptionByISBN(ctx, isbn)

	b := book.New(title, author, isbn, year, description, cmd.CoverURL)
	if err := uc.repo.Save(ctx, b); err != nil {
		return err
	}

	uc.listeners.notify(ctx, book.Created(title, isbn))
	return nil
}
