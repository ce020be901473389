package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdateBookUseCase_Execute(t *testing.T) {
	repo := newFakeRepository()
	mustSeed(repo, "Dune", "Frank Herbert", "9780441172719", 1965, "desert planet")
	recorder := &eventRecorder{}
	uc := NewUpdateBookUseCase(repo, recorder.listen)

	cmd := UpdateBookCommand{
		ISBN:  "9780441172719",
		Title: strPtr("Dune (Deluxe Edition)"),
		Year:  intPtr(2019),
	}
	require.NoError(t, uc.Execute(context.Background(), cmd))

	isbn, err := book.NewISBN(cmd.ISBN)
	require.NoError(t, err)
	stored, err := repo.FindByISBN(context.Background(), isbn)
	require.NoError(t, err)
	assert.Equal(t, "Dune (Deluxe Edition)", stored.Title().String())
	assert.Equal(t, 2019, stored.Year().Int())
	// Omitted fields keep their stored values.
	assert.Equal(t, "Frank Herbert", stored.Author().String())
	assert.Equal(t, "desert planet", stored.Description().String())

	require.Len(t, recorder.events, 1)
	assert.Equal(t, book.ActionUpdated, recorder.events[0].Action)
	assert.Equal(t, "Dune (Deluxe Edition)", recorder.events[0].Title.String())
}

func TestUpdateBookUseCase_NotFound(t *testing.T) {
	repo := newFakeRepository()
	recorder := &eventRecorder{}
	uc := NewUpdateBookUseCase(repo, recorder.listen)

	err := uc.Execute(context.Background(), UpdateBookCommand{ISBN: "9780441172719", Title: strPtr("Dune")})
	assert.ErrorIs(t, err, book.ErrNotFound)
	assert.Empty(t, recorder.events)
}

func TestUpdateBookUseCase_InvalidField(t *testing.T) {
	repo := newFakeRepository()
	mustSeed(repo, "Dune", "Frank Herbert", "9780441172719", 1965, "")
	recorder := &eventRecorder{}
	uc := NewUpdateBookUseCase(repo, recorder.listen)

	err := uc.Execute(context.Background(), UpdateBookCommand{ISBN: "9780441172719", Title: strPtr("  ")})
	assert.ErrorIs(t, err, book.ErrTitleEmpty)
	assert.Empty(t, recorder.events)

	isbn, errISBN := book.NewISBN("9780441172719")
	require.NoError(t, errISBN)
	stored, errFind := repo.FindByISBN(context.Background(), isbn)
	require.NoError(t, errFind)
	assert.Equal(t, "Dune", stored.Title().String())
}
