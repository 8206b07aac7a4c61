package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/app/services"
	"github.com/wmad/library-backend/internal/middleware"
	"github.com/wmad/library-backend/internal/pkg/helpers"
)

// BookController handles catalogue operations
type BookController struct {
	bookService services.BookService
}

// NewBookController creates a new BookController
func NewBookController(bookService services.BookService) *BookController {
	return &BookController{
		bookService: bookService,
	}
}

// CreateBook adds a book to the catalogue
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookRequest true "Book information; title and isbn are required"
// @Success 201 {object} models.Book
// @Failure 400 {object} dto.ErrorResponse "Invalid book data"
// @Failure 409 {object} dto.ErrorResponse "ISBN already exists"
// @Router /api/books [post]
func (c *BookController) CreateBook(ctx *gin.Context) {
	var req dto.BookRequest
	if !bindJSON(ctx, &req, "Invalid book data") {
		return
	}

	book, err := c.bookService.CreateBook(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, book)
}

// GetAllBooks lists the whole catalogue
// @Summary List books
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Book
// @Router /api/books [get]
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	books, err := c.bookService.GetAllBooks(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, books)
}

// GetBooksPage returns one page of books ordered by title
// @Summary Paginated books
// @Description Non-numeric or non-positive values fall back to page 1 and pageSize 10
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} dto.PaginatedResponse[models.Book]
// @Router /api/books/pagination [get]
func (c *BookController) GetBooksPage(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	result, err := c.bookService.GetBooksPage(ctx.Request.Context(), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetBookByID retrieves one book
// @Summary Get book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID" Format(int64)
// @Success 200 {object} models.Book
// @Failure 400 {object} dto.ErrorResponse "Invalid book ID"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Router /api/books/{id} [get]
func (c *BookController) GetBookByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "book")
	if !ok {
		return
	}

	book, err := c.bookService.GetBookByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, book)
}

// GetBookByISBN retrieves a book by ISBN
// @Summary Get book by ISBN
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param isbn path string true "ISBN"
// @Success 200 {object} models.Book
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Router /api/books/isbn/{isbn} [get]
func (c *BookController) GetBookByISBN(ctx *gin.Context) {
	book, err := c.bookService.GetBookByISBN(ctx.Request.Context(), ctx.Param("isbn"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, book)
}

// UpdateBook applies a partial update
// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID" Format(int64)
// @Param request body dto.BookRequest true "Fields to change"
// @Success 200 {object} models.Book
// @Failure 400 {object} dto.ErrorResponse "Invalid book data"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Failure 409 {object} dto.ErrorResponse "ISBN already exists"
// @Router /api/books/{id} [put]
func (c *BookController) UpdateBook(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "book")
	if !ok {
		return
	}

	var req dto.BookRequest
	if !bindJSON(ctx, &req, "Invalid book data") {
		return
	}

	book, err := c.bookService.UpdateBook(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, book)
}

// DeleteBook removes a book
// @Summary Delete book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID" Format(int64)
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Failure 409 {object} dto.ErrorResponse "Book has book issues"
// @Router /api/books/{id} [delete]
func (c *BookController) DeleteBook(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "book")
	if !ok {
		return
	}

	if err := c.bookService.DeleteBook(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Book deleted"})
}
