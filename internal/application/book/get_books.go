package book

import (
	"context"
	"strings"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

// GetBooksQuery optionally narrows the listing with a search term.
type GetBooksQuery struct {
	Search string
}

// GetBooksResponse is the listing result, newest first.
type GetBooksResponse struct {
	Books []BookDTO
	Count int
}

// GetBooksUseCase lists the catalog, optionally filtered by a
// case-insensitive substring match over title, author and description.
type GetBooksUseCase struct {
	repo book.Repository
}

func NewGetBooksUseCase(repo book.Repository) *GetBooksUseCase {
	return &GetBooksUseCase{repo: repo}
}

func (uc *GetBooksUseCase) Execute(ctx context.Context, query GetBooksQuery) (GetBooksResponse, error) {
	var (
		books *book.Collection
		err   error
	)

	term := strings.TrimSpace(query.Search)
	if term == "" {
		books, err = uc.repo.FindAll(ctx)
	} else {
		books, err = uc.repo.Search(ctx, term)
	}
	if err != nil {
		return GetBooksResponse{}, err
	}

	return GetBooksResponse{
		Books: toDTOs(books),
		Count: books.Count(),
	}, nil
}
