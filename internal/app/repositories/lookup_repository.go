package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
)

// LookupRepository reads and seeds the user_roles and book_issue_statuses tables
type LookupRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewLookupRepository creates a new LookupRepository
func NewLookupRepository(db DBTX) *LookupRepository {
	return &LookupRepository{db: db, sb: psql}
}

// EnsureRole inserts the role if it is missing and returns its id
func (r *LookupRepository) EnsureRole(ctx context.Context, name string) (int64, error) {
	return r.ensure(ctx, "user_roles", "user_role_name", name)
}

// EnsureStatus inserts the status if it is missing and returns its id
func (r *LookupRepository) EnsureStatus(ctx context.Context, status string) (int64, error) {
	return r.ensure(ctx, "book_issue_statuses", "status", status)
}

func (r *LookupRepository) ensure(ctx context.Context, table, column, value string) (int64, error) {
	// DO UPDATE so RETURNING also yields the id of an existing row
	sql, args, err := r.sb.Insert(table).
		Columns(column).
		Values(value).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s RETURNING id", column, column, column)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build ensure %s query: %w", table, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error ensuring %s %q: %w", table, value, err)
	}
	return id, nil
}

// GetRoleByName finds a role by its name
func (r *LookupRepository) GetRoleByName(ctx context.Context, name string) (*models.UserRole, error) {
	sql, args, err := r.sb.Select("id", "user_role_name").
		From("user_roles").
		Where(squirrel.Eq{"user_role_name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get role query: %w", err)
	}

	role := &models.UserRole{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&role.ID, &role.UserRoleName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting role %q: %w", name, err)
	}
	return role, nil
}

// ListRoles returns every role ordered by id
func (r *LookupRepository) ListRoles(ctx context.Context) ([]*models.UserRole, error) {
	sql, args, err := r.sb.Select("id", "user_role_name").From("user_roles").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list roles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying roles: %w", err)
	}
	defer rows.Close()

	roles := []*models.UserRole{}
	for rows.Next() {
		role := &models.UserRole{}
		if err := rows.Scan(&role.ID, &role.UserRoleName); err != nil {
			return nil, fmt.Errorf("error scanning role row: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// ListStatuses returns every book issue status ordered by id
func (r *LookupRepository) ListStatuses(ctx context.Context) ([]*models.BookIssueStatus, error) {
	sql, args, err := r.sb.Select("id", "status").From("book_issue_statuses").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list statuses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying statuses: %w", err)
	}
	defer rows.Close()

	statuses := []*models.BookIssueStatus{}
	for rows.Next() {
		s := &models.BookIssueStatus{}
		if err := rows.Scan(&s.ID, &s.Status); err != nil {
			return nil, fmt.Errorf("error scanning status row: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
