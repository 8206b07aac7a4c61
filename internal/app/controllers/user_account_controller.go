package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/app/services"
	"github.com/wmad/library-backend/internal/middleware"
)

// UserAccountController handles staff account operations
type UserAccountController struct {
	accountService services.UserAccountService
}

// NewUserAccountController creates a new UserAccountController
func NewUserAccountController(accountService services.UserAccountService) *UserAccountController {
	return &UserAccountController{
		accountService: accountService,
	}
}

// CreateUserAccount handles account creation
// @Summary Create a staff account
// @Description is_activated defaults to false and is_active to true. The password is stored hashed.
// @Tags user_accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserAccountRequest true "Account information"
// @Success 201 {object} dto.UserAccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user account data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /api/user_accounts [post]
func (c *UserAccountController) CreateUserAccount(ctx *gin.Context) {
	var req dto.CreateUserAccountRequest
	if !bindJSON(ctx, &req, "Invalid user account data") {
		return
	}

	account, err := c.accountService.CreateUserAccount(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewUserAccountResponse(account))
}

// GetAllUserAccounts lists accounts
// @Summary List staff accounts
// @Tags user_accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserAccountResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/user_accounts [get]
func (c *UserAccountController) GetAllUserAccounts(ctx *gin.Context) {
	accounts, err := c.accountService.GetAllUserAccounts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserAccountListResponse(accounts))
}

// GetUserAccountByID retrieves one account
// @Summary Get staff account
// @Tags user_accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "User account ID" Format(int64)
// @Success 200 {object} dto.UserAccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user account ID"
// @Failure 404 {object} dto.ErrorResponse "User account not found"
// @Router /api/user_accounts/{id} [get]
func (c *UserAccountController) GetUserAccountByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user account")
	if !ok {
		return
	}

	account, err := c.accountService.GetUserAccountByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserAccountResponse(account))
}

// UpdateUserAccount applies a partial update
// @Summary Update staff account
// @Description Only the supplied fields change. A new password is re-hashed.
// @Tags user_accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User account ID" Format(int64)
// @Param request body dto.UpdateUserAccountRequest true "Fields to change"
// @Success 200 {object} dto.UserAccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user account data"
// @Failure 404 {object} dto.ErrorResponse "User account not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /api/user_accounts/{id} [put]
func (c *UserAccountController) UpdateUserAccount(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user account")
	if !ok {
		return
	}

	var req dto.UpdateUserAccountRequest
	if !bindJSON(ctx, &req, "Invalid user account data") {
		return
	}

	account, err := c.accountService.UpdateUserAccount(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserAccountResponse(account))
}

// DeleteUserAccount removes an account
// @Summary Delete staff account
// @Tags user_accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "User account ID" Format(int64)
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "User account not found"
// @Failure 409 {object} dto.ErrorResponse "User account has processed book issues"
// @Router /api/user_accounts/{id} [delete]
func (c *UserAccountController) DeleteUserAccount(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user account")
	if !ok {
		return
	}

	if err := c.accountService.DeleteUserAccount(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User account deleted"})
}
