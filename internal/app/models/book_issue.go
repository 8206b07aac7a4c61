package models

import "time"

// BookIssue is a checkout transaction based on the 'book_issues' table.
// StatusID is caller-managed: setting ReturnDate does not change it.
type BookIssue struct {
	ID              int64      `json:"id" db:"id" example:"1"`
	TransactionCode string     `json:"transaction_code" db:"transaction_code" example:"Q4ZP9B"`
	MemberID        int64      `json:"member_id" db:"member_id" example:"1"`
	BookID          int64      `json:"book_id" db:"book_id" example:"1"`
	IssueDate       time.Time  `json:"issue_date" db:"issue_date"`
	DueDate         time.Time  `json:"due_date" db:"due_date"`
	ReturnDate      *time.Time `json:"return_date" db:"return_date"` // Nullable, nil means not returned yet
	StatusID        int64      `json:"status_id" db:"status_id" example:"1"`
	ProcessedByID   int64      `json:"processed_by_id" db:"processed_by_id" example:"1"`
}

// BookIssueDetail is a BookIssue with its references resolved
type BookIssueDetail struct {
	BookIssue
	Book        Book
	Member      Member
	ProcessedBy UserAccount // UserRole is always populated
	Status      BookIssueStatus
}
