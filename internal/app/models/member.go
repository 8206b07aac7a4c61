package models

import "time"

// Member is a library patron based on the 'members' table
type Member struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	MemberCode  string    `json:"member_code" db:"member_code" example:"X7K2QD"` // Generated at creation, never rewritten
	Fullname    string    `json:"fullname" db:"fullname" example:"Jane Doe"`
	DateOfBirth time.Time `json:"date_of_birth" db:"date_of_birth" example:"1990-05-17T00:00:00Z"`
	Address     string    `json:"address" db:"address" example:"12 Library Lane"`
	PhoneNumber string    `json:"phone_number" db:"phone_number" example:"+1 555 0100"`
	Email       string    `json:"email" db:"email" example:"jane@example.com"`
	StartDate   time.Time `json:"start_date" db:"start_date" example:"2024-01-01T00:00:00Z"`
	ExpiryDate  time.Time `json:"expiry_date" db:"expiry_date" example:"2025-01-01T00:00:00Z"`
	IsActive    bool      `json:"is_active" db:"is_active" example:"true"`
}
