package models

// Book represents a catalogue entry based on the 'books' table
type Book struct {
	ID              int64   `json:"id" db:"id" example:"1"`
	Title           string  `json:"title" db:"title" example:"The Go Programming Language"`
	Authors         *string `json:"authors" db:"authors" example:"Alan Donovan, Brian Kernighan"` // Free text, not linked to authors
	ISBN            string  `json:"isbn" db:"isbn" example:"9780134190440"`
	Publisher       *string `json:"publisher" db:"publisher"`
	PublicationYear *int32  `json:"publication_year" db:"publication_year" example:"2015"`
	Edition         *string `json:"edition" db:"edition"`
	Genre           *string `json:"genre" db:"genre"`
	Language        *string `json:"language" db:"language"`
	NumberOfPages   *int32  `json:"number_of_pages" db:"number_of_pages"`
	CoverImageURL   *string `json:"cover_image_url" db:"cover_image_url"`
	ShelfLocation   *string `json:"shelf_location" db:"shelf_location"`
	Description     *string `json:"description" db:"description"`
}
