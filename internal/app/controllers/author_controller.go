package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/app/services"
	"github.com/wmad/library-backend/internal/middleware"
)

// AuthorController handles author operations
type AuthorController struct {
	authorService services.AuthorService
}

// NewAuthorController creates a new AuthorController
func NewAuthorController(authorService services.AuthorService) *AuthorController {
	return &AuthorController{
		authorService: authorService,
	}
}

// CreateAuthor adds an author
// @Summary Create an author
// @Tags authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAuthorRequest true "Author information"
// @Success 201 {object} models.Author
// @Failure 400 {object} dto.ErrorResponse "Invalid author data"
// @Router /api/authors [post]
func (c *AuthorController) CreateAuthor(ctx *gin.Context) {
	var req dto.CreateAuthorRequest
	if !bindJSON(ctx, &req, "Invalid author data") {
		return
	}

	author, err := c.authorService.CreateAuthor(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, author)
}

// GetAllAuthors lists authors
// @Summary List authors
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Author
// @Router /api/authors [get]
func (c *AuthorController) GetAllAuthors(ctx *gin.Context) {
	authors, err := c.authorService.GetAllAuthors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, authors)
}

// GetAuthorByID retrieves one author
// @Summary Get author
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Author ID" Format(int64)
// @Success 200 {object} models.Author
// @Failure 400 {object} dto.ErrorResponse "Invalid author ID"
// @Failure 404 {object} dto.ErrorResponse "Author not found"
// @Router /api/authors/{id} [get]
func (c *AuthorController) GetAuthorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "author")
	if !ok {
		return
	}

	author, err := c.authorService.GetAuthorByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, author)
}
