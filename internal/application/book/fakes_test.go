package book

import (
	"context"
	"strings"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

// fakeRepository is an in-memory Repository keeping insertion order so the
// newest-first listing contract can be asserted without a database.
type fakeRepository struct {
	books map[string]*book.Book
	order []string

	saveErr error
	findErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: make(map[string]*book.Book)}
}

func (r *fakeRepository) Save(_ context.Context, b *book.Book) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	key := b.ISBN().String()
	if _, ok := r.books[key]; !ok {
		r.order = append(r.order, key)
	}
	r.books[key] = b
	return nil
}

func (r *fakeRepository) FindByISBN(_ context.Context, isbn book.ISBN) (*book.Book, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	b, ok := r.books[isbn.String()]
	if !ok {
		return nil, book.ErrNotFound
	}
	return b, nil
}

func (r *fakeRepository) Exists(_ context.Context, isbn book.ISBN) (bool, error) {
	_, ok := r.books[isbn.String()]
	return ok, nil
}

func (r *fakeRepository) Delete(_ context.Context, isbn book.ISBN) error {
	key := isbn.String()
	if _, ok := r.books[key]; !ok {
		return nil
	}
	delete(r.books, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeRepository) FindAll(_ context.Context) (*book.Collection, error) {
	books := make([]*book.Book, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		books = append(books, r.books[r.order[i]])
	}
	return book.NewCollection(books...)
}

func (r *fakeRepository) Search(_ context.Context, term string) (*book.Collection, error) {
	needle := strings.ToLower(term)
	books := make([]*book.Book, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		b := r.books[r.order[i]]
		haystack := strings.ToLower(b.Title().String() + " " + b.Author().String() + " " + b.Description().String())
		if strings.Contains(haystack, needle) {
			books = append(books, b)
		}
	}
	return book.NewCollection(books...)
}

// fakeProvider records enrichment calls and serves a canned description.
type fakeProvider struct {
	description string
	calls       []string
}

func (p *fakeProvider) DescriptionByISBN(_ context.Context, isbn book.ISBN) book.Description {
	p.calls = append(p.calls, isbn.String())
	if p.description == "" {
		return book.EmptyDescription()
	}
	description, err := book.NewDescription(p.description)
	if err != nil {
		return book.EmptyDescription()
	}
	return description
}

// eventRecorder captures dispatched modification events.
type eventRecorder struct {
	events []book.Modified
}

func (r *eventRecorder) listen(_ context.Context, event book.Modified) {
	r.events = append(r.events, event)
}

func mustSeed(r *fakeRepository, title, author, isbn string, year int, description string) {
	t, err := book.NewTitle(title)
	if err != nil {
		panic(err)
	}
	a, err := book.NewAuthor(author)
	if err != nil {
		panic(err)
	}
	i, err := book.NewISBN(isbn)
	if err != nil {
		panic(err)
	}
	y, err := book.NewYear(year)
	if err != nil {
		panic(err)
	}
	d := book.EmptyDescription()
	if description != "" {
		d, err = book.NewDescription(description)
		if err != nil {
			panic(err)
		}
	}
	if err := r.Save(context.Background(), book.New(t, a, i, y, d, "")); err != nil {
		panic(err)
	}
}
