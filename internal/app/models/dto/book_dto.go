package dto

// BookRequest is used for both create and update. On update only the
// supplied (non-nil) fields are written.
type BookRequest struct {
	Title           *string `json:"title"`
	Authors         *string `json:"authors"`
	ISBN            *string `json:"isbn"`
	Publisher       *string `json:"publisher"`
	PublicationYear *int32  `json:"publication_year"`
	Edition         *string `json:"edition"`
	Genre           *string `json:"genre"`
	Language        *string `json:"language"`
	NumberOfPages   *int32  `json:"number_of_pages"`
	CoverImageURL   *string `json:"cover_image_url"`
	ShelfLocation   *string `json:"shelf_location"`
	Description     *string `json:"description"`
}

// BookPaginationQuery carries the raw query values; parsing is lenient
type BookPaginationQuery struct {
	Page     string `form:"page"`
	PageSize string `form:"pageSize"`
}
