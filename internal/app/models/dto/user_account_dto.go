package dto

import (
	"time"

	"github.com/wmad/library-backend/internal/app/models"
)

// CreateUserAccountRequest represents account creation data. Email, username
// and password must be present but may be empty.
type CreateUserAccountRequest struct {
	UserRoleID  int64   `json:"user_role_id"`
	Email       *string `json:"email" swaggertype:"string"`
	Username    *string `json:"username" swaggertype:"string"`
	Password    *string `json:"password" swaggertype:"string"`
	IsActivated *bool   `json:"is_activated"` // defaults to false
	IsActive    *bool   `json:"is_active"`    // defaults to true
}

// UpdateUserAccountRequest is a partial update; nil fields are left unchanged
type UpdateUserAccountRequest struct {
	UserRoleID  *int64  `json:"user_role_id"`
	Email       *string `json:"email"`
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	IsActivated *bool   `json:"is_activated"`
	IsActive    *bool   `json:"is_active"`
}

// UserRoleResponse is the joined role
type UserRoleResponse struct {
	ID           int64  `json:"id" example:"2"`
	UserRoleName string `json:"user_role_name" example:"librarian"`
}

// UserAccountResponse is the restricted projection of an account; it never
// carries the password hash.
type UserAccountResponse struct {
	ID          int64            `json:"id" example:"1"`
	Email       string           `json:"email" example:"librarian@example.com"`
	Username    string           `json:"username" example:"librarian"`
	IsActivated bool             `json:"is_activated" example:"false"`
	IsActive    bool             `json:"is_active" example:"true"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	UserRole    UserRoleResponse `json:"user_role"`
}

// NewUserAccountResponse builds the restricted projection
func NewUserAccountResponse(account *models.UserAccount) UserAccountResponse {
	resp := UserAccountResponse{
		ID:          account.ID,
		Email:       account.Email,
		Username:    account.Username,
		IsActivated: account.IsActivated,
		IsActive:    account.IsActive,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
		UserRole:    UserRoleResponse{ID: account.UserRoleID},
	}
	if account.UserRole != nil {
		resp.UserRole.ID = account.UserRole.ID
		resp.UserRole.UserRoleName = account.UserRole.UserRoleName
	}
	return resp
}

// NewUserAccountListResponse maps a slice of accounts
func NewUserAccountListResponse(accounts []*models.UserAccount) []UserAccountResponse {
	out := make([]UserAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, NewUserAccountResponse(a))
	}
	return out
}
