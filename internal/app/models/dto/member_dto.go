package dto

import "github.com/wmad/library-backend/internal/pkg/dates"

// MemberRequest is the create/update payload for a member. Every field is a
// pointer so that an omitted key can be told apart from a zero value.
type MemberRequest struct {
	Fullname    *string     `json:"fullname" validate:"required"`
	DateOfBirth *dates.Date `json:"date_of_birth" validate:"required" swaggertype:"string" example:"1990-05-17"`
	Address     *string     `json:"address" validate:"required"`
	PhoneNumber *string     `json:"phone_number" validate:"required"`
	Email       *string     `json:"email" validate:"required"`
	StartDate   *dates.Date `json:"start_date" validate:"required" swaggertype:"string" example:"2024-01-01"`
	ExpiryDate  *dates.Date `json:"expiry_date" validate:"required" swaggertype:"string" example:"2025-01-01"`
	IsActive    *bool       `json:"is_active" validate:"required"`
}
