package models

// Author based on the 'authors' table
type Author struct {
	ID        int64   `json:"id" db:"id" example:"1"`
	FirstName string  `json:"firstName" db:"first_name" example:"Ursula"`
	LastName  string  `json:"lastName" db:"last_name" example:"Le Guin"`
	Bio       *string `json:"bio" db:"bio"`
}
