package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a staff self-registration. Empty strings are
// accepted; only absent fields are rejected.
type RegisterRequest struct {
	Username   *string `json:"username" swaggertype:"string" example:"librarian"`
	Email      *string `json:"email" swaggertype:"string" example:"librarian@example.com"`
	Password   *string `json:"password" swaggertype:"string"`
	UserRoleID int64   `json:"userRoleId" binding:"required,min=1"`
}

// AuthUser is the account summary returned next to a token
type AuthUser struct {
	ID         int64  `json:"id" example:"1"`
	Username   string `json:"username" example:"librarian"`
	Email      string `json:"email" example:"librarian@example.com"`
	UserRoleID int64  `json:"userRoleId" example:"2"`
	Active     bool   `json:"active" example:"true"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
