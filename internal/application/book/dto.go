package book

import (
	"github.com/luismlg/casfid-technical-test/internal/domain/book"
)

// BookDTO is the flat transfer representation of a book handed to the
// interface layer. Optional fields serialize as null when absent.
type BookDTO struct {
	ISBN        string  `json:"isbn"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Year        int     `json:"year"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
}

// toDTO flattens the aggregate into its transfer representation.
func toDTO(b *book.Book) BookDTO {
	dto := BookDTO{
		ISBN:   b.ISBN().String(),
		Title:  b.Title().String(),
		Author: b.Author().String(),
		Year:   b.Year().Int(),
	}

	if !b.Description().IsEmpty() {
		description := b.Description().String()
		dto.Description = &description
	}
	if b.CoverURL() != "" {
		coverURL := b.CoverURL()
		dto.CoverURL = &coverURL
	}

	return dto
}

// toDTOs maps a domain collection to transfer records, keeping order.
func toDTOs(c *book.Collection) []BookDTO {
	dtos := make([]BookDTO, 0, c.Count())
	c.Each(func(b *book.Book) {
		dtos = append(dtos, toDTO(b))
	})
	return dtos
}
