package dto

// CreateAuthorRequest represents author creation data
type CreateAuthorRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Bio       *string `json:"bio"`
}
