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

const (
	userAccountEmailConstraint    = "user_accounts_email_key"
	userAccountUsernameConstraint = "user_accounts_username_key"
)

// Restricted projection: the password hash is not selected
var userAccountProjection = []string{
	"ua.id", "ua.user_role_id", "ua.email", "ua.username", "ua.is_activated",
	"ua.is_active", "ua.created_at", "ua.updated_at", "ur.id", "ur.user_role_name",
}

// UserAccountRepository handles user account database operations
type UserAccountRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewUserAccountRepository creates a new UserAccountRepository
func NewUserAccountRepository(db DBTX) *UserAccountRepository {
	return &UserAccountRepository{db: db, sb: psql}
}

func (r *UserAccountRepository) projection() squirrel.SelectBuilder {
	return r.sb.Select(userAccountProjection...).
		From("user_accounts ua").
		Join("user_roles ur ON ur.id = ua.user_role_id")
}

func scanUserAccount(row pgx.Row) (*models.UserAccount, error) {
	a := &models.UserAccount{UserRole: &models.UserRole{}}
	err := row.Scan(&a.ID, &a.UserRoleID, &a.Email, &a.Username, &a.IsActivated,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt, &a.UserRole.ID, &a.UserRole.UserRoleName)
	return a, err
}

func translateUserAccountWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, userAccountEmailConstraint):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, userAccountUsernameConstraint):
		return apperrors.ErrUsernameExists
	case dberrors.IsDuplicateKeyError(err):
		return apperrors.ErrResourceAlreadyExists
	case dberrors.IsForeignKeyError(err):
		return apperrors.ErrInvalidReference
	case dberrors.IsNotNullError(err):
		return apperrors.NewValidationError("email, username, password and user_role_id are required")
	}
	return nil
}

// Create inserts an account (Password must already be hashed) and sets ID and timestamps
func (r *UserAccountRepository) Create(ctx context.Context, a *models.UserAccount) error {
	sql, args, err := r.sb.Insert("user_accounts").
		Columns("user_role_id", "email", "username", "password", "is_activated", "is_active").
		Values(a.UserRoleID, a.Email, a.Username, a.Password, a.IsActivated, a.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user account query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if mapped := translateUserAccountWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("email", a.Email).Msg("Error executing create user account query")
		return fmt.Errorf("error creating user account: %w", err)
	}
	return nil
}

// List returns the restricted projection of every account
func (r *UserAccountRepository) List(ctx context.Context) ([]*models.UserAccount, error) {
	sql, args, err := r.projection().OrderBy("ua.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list user accounts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list user accounts query")
		return nil, fmt.Errorf("error querying user accounts: %w", err)
	}
	defer rows.Close()

	accounts := []*models.UserAccount{}
	for rows.Next() {
		a, err := scanUserAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user account rows: %w", err)
	}
	return accounts, nil
}

// GetByID returns the restricted projection of one account
func (r *UserAccountRepository) GetByID(ctx context.Context, id int64) (*models.UserAccount, error) {
	sql, args, err := r.projection().Where(squirrel.Eq{"ua.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user account query: %w", err)
	}

	a, err := scanUserAccount(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserAccountNotFound
		}
		logger.Error().Err(err).Int64("userAccountID", id).Msg("Error scanning user account row")
		return nil, fmt.Errorf("error getting user account: %w", err)
	}
	return a, nil
}

// GetByEmailWithPassword loads the credential row used by login
func (r *UserAccountRepository) GetByEmailWithPassword(ctx context.Context, email string) (*models.UserAccount, error) {
	sql, args, err := r.sb.Select("id", "user_role_id", "email", "username", "password", "is_activated", "is_active").
		From("user_accounts").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user account by email query: %w", err)
	}

	a := &models.UserAccount{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.UserRoleID, &a.Email, &a.Username,
		&a.Password, &a.IsActivated, &a.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserAccountNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user account credentials")
		return nil, fmt.Errorf("error getting user account by email: %w", err)
	}
	return a, nil
}

// Update writes only the given columns and bumps updated_at
func (r *UserAccountRepository) Update(ctx context.Context, id int64, changes map[string]interface{}) error {
	q := r.sb.Update("user_accounts").
		SetMap(changes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user account query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := translateUserAccountWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("userAccountID", id).Msg("Error executing update user account query")
		return fmt.Errorf("error updating user account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserAccountNotFound
	}
	return nil
}

// Delete removes an account by ID
func (r *UserAccountRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("user_accounts").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user account query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.NewConflictError("User account has processed book issues")
		}
		logger.Error().Err(err).Int64("userAccountID", id).Msg("Error executing delete user account query")
		return fmt.Errorf("error deleting user account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserAccountNotFound
	}
	return nil
}
