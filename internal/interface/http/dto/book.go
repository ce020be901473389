package dto

// CreateBookRequest is the payload for registering a book. A description
// field is accepted for wire compatibility but ignored: the stored
// description always comes from the enrichment provider.
type CreateBookRequest struct {
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
}

// UpdateBookRequest is a partial update. Absent fields stay nil and leave
// the stored value untouched; the ISBN in the URL cannot be changed.
type UpdateBookRequest struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Year        *int    `json:"year"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
}

// BookResponse is the public shape of a book. Description and cover URL
// serialize as null when the book has none.
type BookResponse struct {
	ISBN        string  `json:"isbn"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Year        int     `json:"year"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
}
