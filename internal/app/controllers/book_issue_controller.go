package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/app/services"
	"github.com/wmad/library-backend/internal/middleware"
)

// BookIssueController handles checkout operations
type BookIssueController struct {
	issueService services.BookIssueService
}

// NewBookIssueController creates a new BookIssueController
func NewBookIssueController(issueService services.BookIssueService) *BookIssueController {
	return &BookIssueController{
		issueService: issueService,
	}
}

// CreateBookIssue records a checkout
// @Summary Issue a book
// @Description The transaction code is generated. processed_by_id defaults to the authenticated account.
// @Tags book_issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookIssueRequest true "Checkout information"
// @Success 201 {object} models.BookIssue
// @Failure 400 {object} dto.ErrorResponse "Invalid book issue data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Could not generate a unique code"
// @Router /api/book_issues [post]
func (c *BookIssueController) CreateBookIssue(ctx *gin.Context) {
	var req dto.CreateBookIssueRequest
	if !bindJSON(ctx, &req, services.InvalidBookIssueDataMessage) {
		return
	}

	if req.ProcessedByID == 0 {
		if userID, ok := middleware.UserIDFromContext(ctx); ok {
			req.ProcessedByID = userID
		}
	}

	issue, err := c.issueService.CreateBookIssue(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, issue)
}

// GetAllBookIssues lists checkouts with their references
// @Summary List book issues
// @Tags book_issues
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BookIssueResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/book_issues [get]
func (c *BookIssueController) GetAllBookIssues(ctx *gin.Context) {
	issues, err := c.issueService.GetAllBookIssues(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewBookIssueListResponse(issues))
}

// GetBookIssueByID retrieves one checkout with its references
// @Summary Get book issue
// @Tags book_issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book issue ID" Format(int64)
// @Success 200 {object} dto.BookIssueResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid book issue ID"
// @Failure 404 {object} dto.ErrorResponse "Book issue not found"
// @Router /api/book_issues/{id} [get]
func (c *BookIssueController) GetBookIssueByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "book issue")
	if !ok {
		return
	}

	issue, err := c.issueService.GetBookIssueByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewBookIssueResponse(issue))
}

// UpdateBookIssue applies a partial update
// @Summary Update book issue
// @Description "return_date": null clears the return date. The status is never changed implicitly.
// @Tags book_issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book issue ID" Format(int64)
// @Param request body dto.UpdateBookIssueRequest true "Fields to change"
// @Success 200 {object} models.BookIssue
// @Failure 400 {object} dto.ErrorResponse "Invalid book issue data"
// @Failure 404 {object} dto.ErrorResponse "Book issue not found"
// @Router /api/book_issues/{id} [put]
func (c *BookIssueController) UpdateBookIssue(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "book issue")
	if !ok {
		return
	}

	var req dto.UpdateBookIssueRequest
	if !bindJSON(ctx, &req, services.InvalidBookIssueDataMessage) {
		return
	}

	issue, err := c.issueService.UpdateBookIssue(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, issue)
}

// DeleteBookIssue removes a checkout
// @Summary Delete book issue
// @Tags book_issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book issue ID" Format(int64)
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Book issue not found"
// @Router /api/book_issues/{id} [delete]
func (c *BookIssueController) DeleteBookIssue(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "book issue")
	if !ok {
		return
	}

	if err := c.issueService.DeleteBookIssue(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Book issue deleted"})
}
