package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luismlg/casfid-technical-test/internal/domain/book"
	apperrors "github.com/luismlg/casfid-technical-test/pkg/errors"
)

// BookModel is the GORM mapping for the books table. The domain entity
// stays persistence-agnostic; all tags live here.
type BookModel struct {
	ID          uint   `gorm:"primaryKey"`
	ISBN        string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Title       string `gorm:"type:varchar(255);not null"`
	Author      string `gorm:"type:varchar(255);not null"`
	Year        int    `gorm:"not null"`
	Description string `gorm:"type:text"`
	CoverURL    string `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BookModel) TableName() string {
	return "books"
}

// bookRepository implements book.Repository on MySQL. It converts between
// the GORM model and the domain entity, and translates database errors
// into business errors.
type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Save upserts the row keyed by the unique isbn column: INSERT ... ON
// DUPLICATE KEY UPDATE over every non-key field, so a second save with the
// same ISBN overwrites the first and bumps updated_at.
func (r *bookRepository) Save(ctx context.Context, b *book.Book) error {
	model := toModel(b)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "isbn"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "author", "year", "description", "cover_url", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "save book")
	}

	return nil
}

func (r *bookRepository) FindByISBN(ctx context.Context, isbn book.ISBN) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn.String()).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "find book")
	}

	return toEntity(&model)
}

func (r *bookRepository) Exists(ctx context.Context, isbn book.ISBN) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BookModel{}).
		Where("isbn = ?", isbn.String()).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "check book existence")
	}

	return count > 0, nil
}

// Delete removes the row. Deleting an absent ISBN is not an error here;
// the use case reads first when it needs not-found semantics.
func (r *bookRepository) Delete(ctx context.Context, isbn book.ISBN) error {
	err := r.db.WithContext(ctx).
		Where("isbn = ?", isbn.String()).
		Delete(&BookModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "delete book")
	}

	return nil
}

func (r *bookRepository) FindAll(ctx context.Context) (*book.Collection, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "list books")
	}

	return toCollection(models)
}

func (r *bookRepository) Search(ctx context.Context, term string) (*book.Collection, error) {
	pattern := "%" + term + "%"

	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("title LIKE ? OR author LIKE ? OR description LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "search books")
	}

	return toCollection(models)
}

func toModel(b *book.Book) *BookModel {
	return &BookModel{
		ISBN:        b.ISBN().String(),
		Title:       b.Title().String(),
		Author:      b.Author().String(),
		Year:        b.Year().Int(),
		Description: b.Description().String(),
		CoverURL:    b.CoverURL(),
	}
}

// toEntity rehydrates a domain entity through the value object factories,
// so a row that no longer satisfies the domain rules surfaces as an error
// instead of a half-valid aggregate.
func toEntity(model *BookModel) (*book.Book, error) {
	title, err := book.NewTitle(model.Title)
	if err != nil {
		return nil, apperrors.Wrapf(err, "hydrate book %s", model.ISBN)
	}
	author, err := book.NewAuthor(model.Author)
	if err != nil {
		return nil, apperrors.Wrapf(err, "hydrate book %s", model.ISBN)
	}
	isbn, err := book.NewISBN(model.ISBN)
	if err != nil {
		return nil, apperrors.Wrapf(err, "hydrate book %s", model.ISBN)
	}
	year, err := book.NewYear(model.Year)
	if err != nil {
		return nil, apperrors.Wrapf(err, "hydrate book %s", model.ISBN)
	}

	description := book.EmptyDescription()
	if model.Description != "" {
		description, err = book.NewDescription(model.Description)
		if err != nil {
			return nil, apperrors.Wrapf(err, "hydrate book %s", model.ISBN)
		}
	}

	return book.New(title, author, isbn, year, description, model.CoverURL), nil
}

func toCollection(models []BookModel) (*book.Collection, error) {
	books := make([]*book.Book, 0, len(models))
	for i := range models {
		b, err := toEntity(&models[i])
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return book.NewCollection(books...)
}
