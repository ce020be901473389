package book

import (
	apperrors "github.com/luismlg/casfid-technical-test/pkg/errors"
)

// Domain errors for the book aggregate. All values are *apperrors.AppError so
// the HTTP layer can map them by code without knowing about this package.
var (
	// ErrNotFound means no book exists for the requested ISBN.
	ErrNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "book not found")

	// ErrAlreadyExists means a create collided with an existing ISBN.
	ErrAlreadyExists = apperrors.New(apperrors.ErrCodeISBNDuplicate, "a book with this ISBN already exists")

	// Value object validation errors.
	ErrTitleEmpty         = apperrors.New(apperrors.ErrCodeInvalidArgument, "title cannot be empty")
	ErrTitleTooLong       = apperrors.New(apperrors.ErrCodeInvalidArgument, "title cannot exceed 255 characters")
	ErrAuthorEmpty        = apperrors.New(apperrors.ErrCodeInvalidArgument, "author cannot be empty")
	ErrAuthorTooLong      = apperrors.New(apperrors.ErrCodeInvalidArgument, "author cannot exceed 255 characters")
	ErrISBNEmpty          = apperrors.New(apperrors.ErrCodeInvalidArgument, "ISBN cannot be empty")
	ErrISBNInvalid        = apperrors.New(apperrors.ErrCodeInvalidArgument, "ISBN must be a valid ISBN-10 or ISBN-13")
	ErrYearOutOfRange     = apperrors.New(apperrors.ErrCodeInvalidArgument, "year must be between 1000 and 9999")
	ErrYearInFuture       = apperrors.New(apperrors.ErrCodeInvalidArgument, "year cannot be further in the future than next year")
	ErrDescriptionTooLong = apperrors.New(apperrors.ErrCodeInvalidArgument, "description cannot exceed 5000 characters")

	// ErrNilBook guards the collection against rows that failed to hydrate.
	ErrNilBook = apperrors.New(apperrors.ErrCodeInvalidArgument, "collection cannot contain a nil book")
)
