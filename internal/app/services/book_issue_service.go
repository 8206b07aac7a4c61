package services

import (
	"context"
	"fmt"

	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
	"github.com/wmad/library-backend/internal/pkg/identifier"
)

// InvalidBookIssueDataMessage is returned when a checkout payload is incomplete
const InvalidBookIssueDataMessage = "Invalid book issue data"

// BookIssueService defines the interface for checkout operations. Status
// changes are always explicit; recording a return date does not move the status.
type BookIssueService interface {
	CreateBookIssue(ctx context.Context, req *dto.CreateBookIssueRequest) (*models.BookIssue, error)
	GetAllBookIssues(ctx context.Context) ([]*models.BookIssueDetail, error)
	GetBookIssueByID(ctx context.Context, id int64) (*models.BookIssueDetail, error)
	UpdateBookIssue(ctx context.Context, id int64, req *dto.UpdateBookIssueRequest) (*models.BookIssue, error)
	DeleteBookIssue(ctx context.Context, id int64) error
}

type bookIssueServiceImpl struct {
	issueRepo BookIssueRepository
	newCode   identifier.Generator
}

// NewBookIssueService creates a new book issue service. A nil generator means identifier.NewCode.
func NewBookIssueService(issueRepo BookIssueRepository, newCode identifier.Generator) BookIssueService {
	return &bookIssueServiceImpl{
		issueRepo: issueRepo,
		newCode:   codeGenerator(newCode),
	}
}

// CreateBookIssue records a checkout under a new transaction code
func (s *bookIssueServiceImpl) CreateBookIssue(ctx context.Context, req *dto.CreateBookIssueRequest) (*models.BookIssue, error) {
	if req.MemberID <= 0 || req.BookID <= 0 || req.StatusID <= 0 || req.ProcessedByID <= 0 ||
		req.IssueDate == nil || req.DueDate == nil {
		return nil, apperrors.NewValidationError(InvalidBookIssueDataMessage)
	}

	issue := &models.BookIssue{
		MemberID:      req.MemberID,
		BookID:        req.BookID,
		IssueDate:     req.IssueDate.Time,
		DueDate:       req.DueDate.Time,
		ReturnDate:    req.ReturnDate.Ptr(),
		StatusID:      req.StatusID,
		ProcessedByID: req.ProcessedByID,
	}

	err := insertWithCode("book_issue", s.newCode, apperrors.ErrTransactionCodeExists, func(code string) error {
		issue.TransactionCode = code
		return s.issueRepo.Create(ctx, issue)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create book issue: %w", err)
	}
	return issue, nil
}

// GetAllBookIssues returns every book issue with its references
func (s *bookIssueServiceImpl) GetAllBookIssues(ctx context.Context) ([]*models.BookIssueDetail, error) {
	issues, err := s.issueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list book issues: %w", err)
	}
	return issues, nil
}

// GetBookIssueByID returns one book issue with its references
func (s *bookIssueServiceImpl) GetBookIssueByID(ctx context.Context, id int64) (*models.BookIssueDetail, error) {
	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get book issue %d: %w", id, err)
	}
	return issue, nil
}

// UpdateBookIssue writes only the supplied fields; "return_date": null clears it
func (s *bookIssueServiceImpl) UpdateBookIssue(ctx context.Context, id int64, req *dto.UpdateBookIssueRequest) (*models.BookIssue, error) {
	changes := map[string]interface{}{}
	for column, value := range map[string]*int64{
		"member_id":       req.MemberID,
		"book_id":         req.BookID,
		"status_id":       req.StatusID,
		"processed_by_id": req.ProcessedByID,
	} {
		if value == nil {
			continue
		}
		if *value <= 0 {
			return nil, apperrors.NewValidationError(InvalidBookIssueDataMessage)
		}
		changes[column] = *value
	}
	if req.IssueDate != nil {
		changes["issue_date"] = req.IssueDate.Time
	}
	if req.DueDate != nil {
		changes["due_date"] = req.DueDate.Time
	}
	if req.ReturnDate.Set {
		changes["return_date"] = req.ReturnDate.Ptr()
	}

	issue, err := s.issueRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("failed to update book issue %d: %w", id, err)
	}
	return issue, nil
}

// DeleteBookIssue removes a book issue
func (s *bookIssueServiceImpl) DeleteBookIssue(ctx context.Context, id int64) error {
	if err := s.issueRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete book issue %d: %w", id, err)
	}
	return nil
}
