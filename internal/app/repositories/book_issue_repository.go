package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
	"github.com/wmad/library-backend/internal/pkg/dberrors"
	"github.com/wmad/library-backend/internal/pkg/logger"
)

const transactionCodeConstraint = "book_issues_transaction_code_key"

var bookIssueColumns = []string{
	"id", "transaction_code", "member_id", "book_id", "issue_date",
	"due_date", "return_date", "status_id", "processed_by_id",
}

// Joined columns are nullable so an unresolved reference can be detected
var bookIssueDetailColumns = append(prefixColumns("bi", bookIssueColumns),
	"b.id", "b.isbn", "b.title",
	"m.id", "m.member_code", "m.fullname", "m.is_active",
	"ua.id", "ua.username", "ua.email", "ur.user_role_name",
	"s.id", "s.status",
)

// BookIssueRepository handles book issue database operations
type BookIssueRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewBookIssueRepository creates a new BookIssueRepository
func NewBookIssueRepository(db DBTX) *BookIssueRepository {
	return &BookIssueRepository{db: db, sb: psql}
}

func scanBookIssue(row pgx.Row) (*models.BookIssue, error) {
	bi := &models.BookIssue{}
	err := row.Scan(&bi.ID, &bi.TransactionCode, &bi.MemberID, &bi.BookID, &bi.IssueDate,
		&bi.DueDate, &bi.ReturnDate, &bi.StatusID, &bi.ProcessedByID)
	return bi, err
}

type issueRefs struct {
	bookID         *int64
	bookISBN       *string
	bookTitle      *string
	memberID       *int64
	memberCode     *string
	memberFullname *string
	memberIsActive *bool
	processorID    *int64
	processorName  *string
	processorEmail *string
	processorRole  *string
	statusID       *int64
	statusName     *string
}

func scanBookIssueDetail(row pgx.Row) (*models.BookIssueDetail, error) {
	d := &models.BookIssueDetail{}
	var refs issueRefs
	err := row.Scan(&d.ID, &d.TransactionCode, &d.MemberID, &d.BookID, &d.IssueDate,
		&d.DueDate, &d.ReturnDate, &d.StatusID, &d.ProcessedByID,
		&refs.bookID, &refs.bookISBN, &refs.bookTitle,
		&refs.memberID, &refs.memberCode, &refs.memberFullname, &refs.memberIsActive,
		&refs.processorID, &refs.processorName, &refs.processorEmail, &refs.processorRole,
		&refs.statusID, &refs.statusName)
	if err != nil {
		return nil, err
	}

	if refs.bookID == nil || refs.memberID == nil || refs.processorID == nil ||
		refs.processorRole == nil || refs.statusID == nil {
		return nil, fmt.Errorf("%w: book issue %d", apperrors.ErrDanglingReference, d.ID)
	}

	d.Book = models.Book{ID: *refs.bookID, ISBN: deref(refs.bookISBN), Title: deref(refs.bookTitle)}
	d.Member = models.Member{
		ID:         *refs.memberID,
		MemberCode: deref(refs.memberCode),
		Fullname:   deref(refs.memberFullname),
		IsActive:   refs.memberIsActive != nil && *refs.memberIsActive,
	}
	d.ProcessedBy = models.UserAccount{
		ID:       *refs.processorID,
		Username: deref(refs.processorName),
		Email:    deref(refs.processorEmail),
		UserRole: &models.UserRole{UserRoleName: *refs.processorRole},
	}
	d.Status = models.BookIssueStatus{ID: *refs.statusID, Status: deref(refs.statusName)}
	return d, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func translateBookIssueWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, transactionCodeConstraint):
		return apperrors.ErrTransactionCodeExists
	case dberrors.IsDuplicateKeyError(err):
		return apperrors.ErrResourceAlreadyExists
	case dberrors.IsForeignKeyError(err):
		return apperrors.ErrInvalidReference
	case dberrors.IsNotNullError(err):
		return apperrors.NewValidationError("member_id, book_id, issue_date, due_date, status_id and processed_by_id are required")
	}
	return nil
}

func (r *BookIssueRepository) detail() squirrel.SelectBuilder {
	return r.sb.Select(bookIssueDetailColumns...).
		From("book_issues bi").
		LeftJoin("books b ON b.id = bi.book_id").
		LeftJoin("members m ON m.id = bi.member_id").
		LeftJoin("user_accounts ua ON ua.id = bi.processed_by_id").
		LeftJoin("user_roles ur ON ur.id = ua.user_role_id").
		LeftJoin("book_issue_statuses s ON s.id = bi.status_id")
}

// Create inserts a book issue and sets its ID
func (r *BookIssueRepository) Create(ctx context.Context, bi *models.BookIssue) error {
	sql, args, err := r.sb.Insert("book_issues").
		Columns(bookIssueColumns[1:]...).
		Values(bi.TransactionCode, bi.MemberID, bi.BookID, bi.IssueDate, bi.DueDate,
			bi.ReturnDate, bi.StatusID, bi.ProcessedByID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create book issue query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&bi.ID); err != nil {
		if mapped := translateBookIssueWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Msg("Error executing create book issue query")
		return fmt.Errorf("error creating book issue: %w", err)
	}
	return nil
}

// List returns every book issue with its references resolved. A single
// unresolvable reference fails the whole listing.
func (r *BookIssueRepository) List(ctx context.Context) ([]*models.BookIssueDetail, error) {
	sql, args, err := r.detail().OrderBy("bi.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list book issues query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list book issues query")
		return nil, fmt.Errorf("error querying book issues: %w", err)
	}
	defer rows.Close()

	issues := []*models.BookIssueDetail{}
	for rows.Next() {
		d, err := scanBookIssueDetail(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning book issue row")
			return nil, fmt.Errorf("error scanning book issue row: %w", err)
		}
		issues = append(issues, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book issue rows: %w", err)
	}
	return issues, nil
}

// GetByID returns one book issue with its references resolved
func (r *BookIssueRepository) GetByID(ctx context.Context, id int64) (*models.BookIssueDetail, error) {
	sql, args, err := r.detail().Where(squirrel.Eq{"bi.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get book issue query: %w", err)
	}

	d, err := scanBookIssueDetail(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookIssueNotFound
		}
		logger.Error().Err(err).Int64("bookIssueID", id).Msg("Error scanning book issue row")
		return nil, fmt.Errorf("error getting book issue: %w", err)
	}
	return d, nil
}

// Update writes only the given columns; transaction_code is never accepted
func (r *BookIssueRepository) Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.BookIssue, error) {
	delete(changes, "transaction_code")
	if len(changes) == 0 {
		d, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &d.BookIssue, nil
	}

	sql, args, err := r.sb.Update("book_issues").
		SetMap(changes).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(bookIssueColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update book issue query: %w", err)
	}

	bi, err := scanBookIssue(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookIssueNotFound
		}
		if mapped := translateBookIssueWriteError(err); mapped != nil {
			return nil, mapped
		}
		logger.Error().Err(err).Int64("bookIssueID", id).Msg("Error executing update book issue query")
		return nil, fmt.Errorf("error updating book issue: %w", err)
	}
	return bi, nil
}

// Delete removes a book issue by ID
func (r *BookIssueRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("book_issues").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete book issue query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("bookIssueID", id).Msg("Error executing delete book issue query")
		return fmt.Errorf("error deleting book issue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBookIssueNotFound
	}
	return nil
}
