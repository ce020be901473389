package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

func TestGetBookUseCase_Execute(t *testing.T) {
	repo := newFakeRepository()
	mustSeed(repo, "Dune", "Frank Herbert", "9780441172719", 1965, "desert planet")
	uc := NewGetBookUseCase(repo)

	dto, err := uc.Execute(context.Background(), GetBookQuery{ISBN: "9780441172719"})
	require.NoError(t, err)
	assert.Equal(t, "Dune", dto.Title)
	assert.Equal(t, "9780441172719", dto.ISBN)
	require.NotNil(t, dto.Description)
	assert.Equal(t, "desert planet", *dto.Description)
	assert.Nil(t, dto.CoverURL)
}

func TestGetBookUseCase_NotFound(t *testing.T) {
	uc := NewGetBookUseCase(newFakeRepository())

	_, err := uc.Execute(context.Background(), GetBookQuery{ISBN: "9780441172719"})
	assert.ErrorIs(t, err, book.ErrNotFound)
}

func TestGetBookUseCase_InvalidISBN(t *testing.T) {
	uc := NewGetBookUseCase(newFakeRepository())

	_, err := uc.Execute(context.Background(), GetBookQuery{ISBN: "not-an-isbn"})
	assert.ErrorIs(t, err, book.ErrISBNInvalid)
}

func TestGetBooksUseCase_ListsNewestFirst(t *testing.T) {
	repo := newFakeRepository()
	mustSeed(repo, "Dune", "Frank Herbert", "9780441172719", 1965, "")
	mustSeed(repo, "Neuromancer", "William Gibson", "9780441569595", 1984, "")
	uc := NewGetBooksUseCase(repo)

	resp, err := uc.Execute(context.Background(), GetBooksQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Books, 2)
	assert.Equal(t, "Neuromancer", resp.Books[0].Title)
	assert.Equal(t, "Dune", resp.Books[1].Title)
}

func TestGetBooksUseCase_Search(t *testing.T) {
	repo := newFakeRepository()
	mustSeed(repo, "Dune", "Frank Herbert", "9780441172719", 1965, "a desert planet")
	mustSeed(repo, "Neuromancer", "William Gibson", "9780441569595", 1984, "")
	uc := NewGetBooksUseCase(repo)

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "matches title", search: "neuro", want: []string{"Neuromancer"}},
		{name: "matches author case-insensitively", search: "HERBERT", want: []string{"Dune"}},
		{name: "matches description", search: "desert", want: []string{"Dune"}},
		{name: "no match yields empty list", search: "tolkien", want: []string{}},
		{name: "blank search lists everything", search: "   ", want: []string{"Neuromancer", "Dune"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), GetBooksQuery{Search: tt.search})
			require.NoError(t, err)
			titles := make([]string, 0, len(resp.Books))
			for _, b := range resp.Books {
				titles = append(titles, b.Title)
			}
			assert.Equal(t, tt.want, titles)
			assert.Equal(t, len(tt.want), resp.Count)
		})
	}
}
