package models

import "time"

// UserAccount is a staff login based on the 'user_accounts' table
type UserAccount struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	UserRoleID  int64     `json:"user_role_id" db:"user_role_id" example:"2"`
	Email       string    `json:"email" db:"email" example:"librarian@example.com"`
	Username    string    `json:"username" db:"username" example:"librarian"`
	Password    string    `json:"-" db:"password"` // bcrypt hash, never serialised
	IsActivated bool      `json:"is_activated" db:"is_activated" example:"false"`
	IsActive    bool      `json:"is_active" db:"is_active" example:"true"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Relation, populated by the joined queries
	UserRole *UserRole `json:"user_role,omitempty"`
}
