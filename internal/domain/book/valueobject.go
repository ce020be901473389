package book

import (
	"regexp"
	"strings"
	"time"
)

// Value objects wrapping the primitive book attributes. Each constructor
// either returns a valid immutable value or a validation error; once built,
// a value never changes. Two values are equal when their contents are equal
// (plain == works, all types are comparable).

const (
	titleMaxLength       = 255
	authorMaxLength      = 255
	descriptionMaxLength = 5000
	yearMin              = 1000
	yearMax              = 9999
)

// =========================================
// Title
// =========================================

// Title is the book title, non-blank and at most 255 characters after
// trimming.
type Title struct {
	value string
}

// NewTitle validates and wraps a raw title.
func NewTitle(value string) (Title, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Title{}, ErrTitleEmpty
	}
	if len(trimmed) > titleMaxLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: value}, nil
}

func (t Title) String() string {
	return t.value
}

// =========================================
// Author
// =========================================

// Author is the book's main author. Any language is accepted, including
// multi-byte scripts; only blank and over-long names are rejected.
type Author struct {
	value string
}

// NewAuthor validates and wraps a raw author name.
func NewAuthor(value string) (Author, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Author{}, ErrAuthorEmpty
	}
	if len(trimmed) > authorMaxLength {
		return Author{}, ErrAuthorTooLong
	}
	return Author{value: value}, nil
}

func (a Author) String() string {
	return a.value
}

// =========================================
// ISBN
// =========================================

var (
	isbnSeparators = regexp.MustCompile(`[\s-]`)
	isbn10Pattern  = regexp.MustCompile(`^\d{9}[\dX]$`)
	isbn13Pattern  = regexp.MustCompile(`^\d{13}$`)
)

// ISBN is the book's natural identifier. Spaces and hyphens are tolerated on
// input and stripped for validation; the value keeps the original spelling.
// Valid forms after stripping: 10 characters matching \d{9}[\dX], or 13 digits.
type ISBN struct {
	value string
}

// NewISBN validates and wraps a raw ISBN-10 or ISBN-13.
func NewISBN(value string) (ISBN, error) {
	cleaned := isbnSeparators.ReplaceAllString(value, "")
	if cleaned == "" {
		return ISBN{}, ErrISBNEmpty
	}
	if !isbn10Pattern.MatchString(cleaned) && !isbn13Pattern.MatchString(cleaned) {
		return ISBN{}, ErrISBNInvalid
	}
	return ISBN{value: value}, nil
}

func (i ISBN) String() string {
	return i.value
}

// =========================================
// Year
// =========================================

// Year is the publication year: four digits, and no further into the future
// than next year (announced but unreleased titles carry next year's date).
type Year struct {
	value int
}

// NewYear validates and wraps a publication year. The upper bound depends on
// the wall clock.
func NewYear(value int) (Year, error) {
	if value < yearMin || value > yearMax {
		return Year{}, ErrYearOutOfRange
	}
	if value > time.Now().Year()+1 {
		return Year{}, ErrYearInFuture
	}
	return Year{value: value}, nil
}

// Int returns the year as an integer.
func (y Year) Int() int {
	return y.value
}

// =========================================
// Description
// =========================================

// Description is the optional synopsis. Unlike the other value objects it may
// be empty (not provided, or not available from the enrichment service); the
// only constraint is the 5000 character ceiling.
type Description struct {
	value string
}

// NewDescription validates and wraps a synopsis.
func NewDescription(value string) (Description, error) {
	if len(value) > descriptionMaxLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: value}, nil
}

// EmptyDescription returns the "no description" value.
func EmptyDescription() Description {
	return Description{}
}

func (d Description) String() string {
	return d.value
}

// IsEmpty reports whether the description carries no usable text.
func (d Description) IsEmpty() bool {
	return strings.TrimSpace(d.value) == ""
}
