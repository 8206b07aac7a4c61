package dto

// MessageResponse is returned by delete endpoints that confirm with a body
type MessageResponse struct {
	Message string `json:"message" example:"Book deleted"`
}

// PaginatedResponse wraps one page of results
type PaginatedResponse[T any] struct {
	Data        []T   `json:"data"`
	TotalCount  int64 `json:"totalCount" example:"25"`
	TotalPages  int   `json:"totalPages" example:"3"`
	CurrentPage int   `json:"currentPage" example:"1"`
}
