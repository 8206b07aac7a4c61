package models

// Seeded lookup values. Rows are created by the seed step; the application
// treats the ids as opaque foreign keys.
const (
	RoleAdmin     = "admin"
	RoleLibrarian = "librarian"

	StatusCheckedOut = "checked-out"
	StatusReturned   = "returned"
	StatusOverdue    = "overdue"
)

// UserRole is a row of the 'user_roles' lookup table
type UserRole struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	UserRoleName string `json:"user_role_name" db:"user_role_name" example:"librarian"`
}

// BookIssueStatus is a row of the 'book_issue_statuses' lookup table
type BookIssueStatus struct {
	ID     int64  `json:"id" db:"id" example:"1"`
	Status string `json:"status" db:"status" example:"checked-out"`
}
