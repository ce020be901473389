package book

import (
	"context"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

// UpdateBookCommand carries a partial update keyed by ISBN. Nil fields
// leave the stored value untouched.
type UpdateBookCommand struct {
	ISBN        string
	Title       *string
	Author      *string
	Year        *int
	Description *string
	CoverURL    *string
}

// UpdateBookUseCase applies a partial update to an existing book.
type UpdateBookUseCase struct {
	repo      book.Repository
	listeners listeners
}

func NewUpdateBookUseCase(repo book.Repository, ls ...book.ModifiedListener) *UpdateBookUseCase {
	return &UpdateBookUseCase{repo: repo, listeners: ls}
}

// Execute loads the book, applies every provided field after validation
// and persists the result. The ISBN itself never changes.
func (uc *UpdateBookUseCase) Execute(ctx context.Context, cmd UpdateBookCommand) error {
	isbn, err := book.NewISBN(cmd.ISBN)
	if err != nil {
		return err
	}

	b, err := uc.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return err
	}

	if cmd.Title != nil {
		title, err := book.NewTitle(*cmd.Title)
		if err != nil {
			return err
		}
		b.UpdateTitle(title)
	}
	if cmd.Author != nil {
		author, err := book.NewAuthor(*cmd.Author)
		if err != nil {
			return err
		}
		b.UpdateAuthor(author)
	}
	if cmd.Year != nil {
		year, err := book.NewYear(*cmd.Year)
		if err != nil {
			return err
		}
		b.UpdateYear(year)
	}
	if cmd.Description != nil {
		description, err := book.NewDescription(*cmd.Description)
		if err != nil {
			return err
		}
		b.UpdateDescription(description)
	}
	if cmd.CoverURL != nil {
		b.UpdateCoverURL(*cmd.CoverURL)
	}

	if err := uc.repo.Save(ctx, b); err != nil {
		return err
	}

	uc.listeners.notify(ctx, book.Updated(b.Title(), b.ISBN()))
	return nil
}
