package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appbook "github.com/luismlg/casfid-technical-test/internal/application/book"
	"github.com/luismlg/casfid-technical-test/internal/interface/http/dto"
	apperrors "github.com/luismlg/casfid-technical-test/pkg/errors"
	"github.com/luismlg/casfid-technical-test/pkg/response"
)

// BookHandler exposes the book catalog over HTTP. It binds requests,
// delegates to the application layer and shapes responses; all business
// rules live below it.
type BookHandler struct {
	createBook *appbook.CreateBookUseCase
	updateBook *appbook.UpdateBookUseCase
	deleteBook *appbook.DeleteBookUseCase
	getBook    *appbook.GetBookUseCase
	getBooks   *appbook.GetBooksUseCase
}

func NewBookHandler(
	createBook *appbook.CreateBookUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
	getBook *appbook.GetBookUseCase,
	getBooks *appbook.GetBooksUseCase,
) *BookHandler {
	return &BookHandler{
		createBook: createBook,
		updateBook: updateBook,
		deleteBook: deleteBook,
		getBook:    getBook,
		getBooks:   getBooks,
	}
}

// GetBooks handles GET /api/books?search=term.
func (h *BookHandler) GetBooks(c *gin.Context) {
	result, err := h.getBooks.Execute(c.Request.Context(), appbook.GetBooksQuery{
		Search: c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	books := make([]dto.BookResponse, 0, len(result.Books))
	for _, b := range result.Books {
		books = append(books, toBookResponse(b))
	}

	response.List(c, books, result.Count)
}

// GetBook handles GET /api/books/:isbn.
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.getBook.Execute(c.Request.Context(), appbook.GetBookQuery{
		ISBN: c.Param("isbn"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Data(c, http.StatusOK, toBookResponse(result))
}

// CreateBook handles POST /api/books.
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	err := h.createBook.Execute(c.Request.Context(), appbook.CreateBookCommand{
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
		Year:     req.Year,
		CoverURL: req.CoverURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "book created")
}

// UpdateBook handles PUT /api/books/:isbn.
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	err := h.updateBook.Execute(c.Request.Context(), appbook.UpdateBookCommand{
		ISBN:        c.Param("isbn"),
		Title:       req.Title,
		Author:      req.Author,
		Year:        req.Year,
		Description: req.Description,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "book updated")
}

// DeleteBook handles DELETE /api/books/:isbn.
func (h *BookHandler) DeleteBook(c *gin.Context) {
	err := h.deleteBook.Execute(c.Request.Context(), appbook.DeleteBookCommand{
		ISBN: c.Param("isbn"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "book deleted")
}

func toBookResponse(b appbook.BookDTO) dto.BookResponse {
	return dto.BookResponse{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Year:        b.Year,
		Description: b.Description,
		CoverURL:    b.CoverURL,
	}
}
