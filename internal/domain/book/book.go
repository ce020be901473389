package book

// Book is the aggregate root of the catalog.
// Design notes:
// 1. The ISBN is the natural identifier and never changes after construction.
// 2. Every other attribute mutates only through a semantic update method that
//    takes an already-validated value object; there are no generic setters.
// 3. The description and cover URL are optional. The cover URL is a plain,
//    unvalidated string.
type Book struct {
	isbn        ISBN
	title       Title
	author      Author
	year        Year
	description Description
	coverURL    string
}

// New assembles a book from validated value objects.
func New(title Title, author Author, isbn ISBN, year Year, description Description, coverURL string) *Book {
	return &Book{
		isbn:        isbn,
		title:       title,
		author:      author,
		year:        year,
		description: description,
		coverURL:    coverURL,
	}
}

func (b *Book) ISBN() ISBN {
	return b.isbn
}

func (b *Book) Title() Title {
	return b.title
}

func (b *Book) Author() Author {
	return b.author
}

func (b *Book) Year() Year {
	return b.year
}

func (b *Book) Description() Description {
	return b.description
}

func (b *Book) CoverURL() string {
	return b.coverURL
}

// UpdateTitle replaces the title.
func (b *Book) UpdateTitle(title Title) {
	b.title = title
}

// UpdateAuthor replaces the author.
func (b *Book) UpdateAuthor(author Author) {
	b.author = author
}

// UpdateYear replaces the publication year.
func (b *Book) UpdateYear(year Year) {
	b.year = year
}

// UpdateDescription replaces the synopsis.
func (b *Book) UpdateDescription(description Description) {
	b.description = description
}

// UpdateCoverURL replaces the cover image URL.
func (b *Book) UpdateCoverURL(coverURL string) {
	b.coverURL = coverURL
}
