package book

import (
	"context"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

// GetBookQuery identifies the book to fetch.
type GetBookQuery struct {
	ISBN string
}

// GetBookUseCase fetches a single book by ISBN.
type GetBookUseCase struct {
	repo book.Repository
}

func NewGetBookUseCase(repo book.Repository) *GetBookUseCase {
	return &GetBookUseCase{repo: repo}
}

func (uc *GetBookUseCase) Execute(ctx context.Context, query GetBookQuery) (BookDTO, error) {
	isbn, err := book.NewISBN(query.ISBN)
	if err != nil {
		return BookDTO{}, err
	}

	b, err := uc.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return BookDTO{}, err
	}

	return toDTO(b), nil
}
