package dto

import (
	"time"

	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/pkg/dates"
)

// CreateBookIssueRequest represents a checkout. The transaction code is
// always generated server side.
type CreateBookIssueRequest struct {
	MemberID      int64              `json:"member_id"`
	BookID        int64              `json:"book_id"`
	IssueDate     *dates.Date        `json:"issue_date" swaggertype:"string" example:"2024-03-01"`
	DueDate       *dates.Date        `json:"due_date" swaggertype:"string" example:"2024-03-15"`
	ReturnDate    dates.NullableDate `json:"return_date" swaggertype:"string" example:"2024-03-10"`
	StatusID      int64              `json:"status_id"`
	ProcessedByID int64              `json:"processed_by_id"`
}

// UpdateBookIssueRequest is a partial update. An explicit "return_date": null
// clears the return date.
type UpdateBookIssueRequest struct {
	MemberID      *int64             `json:"member_id"`
	BookID        *int64             `json:"book_id"`
	IssueDate     *dates.Date        `json:"issue_date" swaggertype:"string"`
	DueDate       *dates.Date        `json:"due_date" swaggertype:"string"`
	ReturnDate    dates.NullableDate `json:"return_date" swaggertype:"string"`
	StatusID      *int64             `json:"status_id"`
	ProcessedByID *int64             `json:"processed_by_id"`
}

// IssuedBook is the compact book reference of a book issue
type IssuedBook struct {
	ID    int64  `json:"id"`
	ISBN  string `json:"isbn"`
	Title string `json:"title"`
}

// IssuedMember is the compact member reference of a book issue
type IssuedMember struct {
	ID         int64  `json:"id"`
	MemberCode string `json:"member_code"`
	Fullname   string `json:"fullname"`
	IsActive   bool   `json:"is_active"`
}

// IssueProcessor is the compact staff reference of a book issue
type IssueProcessor struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	UserRoleName string `json:"user_role_name"`
}

// IssueStatus is the compact status reference of a book issue
type IssueStatus struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookIssueResponse is a book issue with its references denormalised
type BookIssueResponse struct {
	ID              int64          `json:"id"`
	TransactionCode string         `json:"transaction_code"`
	MemberID        int64          `json:"member_id"`
	BookID          int64          `json:"book_id"`
	IssueDate       time.Time      `json:"issue_date"`
	DueDate         time.Time      `json:"due_date"`
	ReturnDate      *time.Time     `json:"return_date"`
	StatusID        int64          `json:"status_id"`
	ProcessedByID   int64          `json:"processed_by_id"`
	Book            IssuedBook     `json:"book"`
	Member          IssuedMember   `json:"member"`
	ProcessedBy     IssueProcessor `json:"processed_by"`
	Status          IssueStatus    `json:"status"`
}

// NewBookIssueResponse builds the denormalised projection
func NewBookIssueResponse(d *models.BookIssueDetail) BookIssueResponse {
	roleName := ""
	if d.ProcessedBy.UserRole != nil {
		roleName = d.ProcessedBy.UserRole.UserRoleName
	}
	return BookIssueResponse{
		ID:              d.ID,
		TransactionCode: d.TransactionCode,
		MemberID:        d.MemberID,
		BookID:          d.BookID,
		IssueDate:       d.IssueDate,
		DueDate:         d.DueDate,
		ReturnDate:      d.ReturnDate,
		StatusID:        d.StatusID,
		ProcessedByID:   d.ProcessedByID,
		Book: IssuedBook{
			ID:    d.Book.ID,
			ISBN:  d.Book.ISBN,
			Title: d.Book.Title,
		},
		Member: IssuedMember{
			ID:         d.Member.ID,
			MemberCode: d.Member.MemberCode,
			Fullname:   d.Member.Fullname,
			IsActive:   d.Member.IsActive,
		},
		ProcessedBy: IssueProcessor{
			ID:           d.ProcessedBy.ID,
			Username:     d.ProcessedBy.Username,
			Email:        d.ProcessedBy.Email,
			UserRoleName: roleName,
		},
		Status: IssueStatus{
			ID:   d.Status.ID,
			Name: d.Status.Status,
		},
	}
}

// NewBookIssueListResponse maps a slice of details
func NewBookIssueListResponse(details []*models.BookIssueDetail) []BookIssueResponse {
	out := make([]BookIssueResponse, 0, len(details))
	for _, d := range details {
		out = append(out, NewBookIssueResponse(d))
	}
	return out
}
