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

const memberCodeConstraint = "members_member_code_key"

var memberColumns = []string{
	"id", "member_code", "fullname", "date_of_birth", "address",
	"phone_number", "email", "start_date", "expiry_date", "is_active",
}

// MemberRepository handles member database operations
type MemberRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db DBTX) *MemberRepository {
	return &MemberRepository{db: db, sb: psql}
}

func scanMember(row pgx.Row) (*models.Member, error) {
	m := &models.Member{}
	err := row.Scan(&m.ID, &m.MemberCode, &m.Fullname, &m.DateOfBirth, &m.Address,
		&m.PhoneNumber, &m.Email, &m.StartDate, &m.ExpiryDate, &m.IsActive)
	return m, err
}

func translateMemberWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, memberCodeConstraint):
		return apperrors.ErrMemberCodeExists
	case dberrors.IsDuplicateKeyError(err):
		return apperrors.ErrResourceAlreadyExists
	case dberrors.IsNotNullError(err):
		return apperrors.ErrValidationFailed
	}
	return nil
}

// Create inserts a member and sets its ID
func (r *MemberRepository) Create(ctx context.Context, m *models.Member) error {
	sql, args, err := r.sb.Insert("members").
		Columns(memberColumns[1:]...).
		Values(m.MemberCode, m.Fullname, m.DateOfBirth, m.Address, m.PhoneNumber,
			m.Email, m.StartDate, m.ExpiryDate, m.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create member query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.ID); err != nil {
		if mapped := translateMemberWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Msg("Error executing create member query")
		return fmt.Errorf("error creating member: %w", err)
	}
	return nil
}

// List returns every member ordered by id
func (r *MemberRepository) List(ctx context.Context) ([]*models.Member, error) {
	sql, args, err := r.sb.Select(memberColumns...).From("members").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list members query")
		return nil, fmt.Errorf("error querying members: %w", err)
	}
	defer rows.Close()

	members := []*models.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return members, nil
}

func (r *MemberRepository) getBy(ctx context.Context, where squirrel.Eq) (*models.Member, error) {
	sql, args, err := r.sb.Select(memberColumns...).From("members").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get member query: %w", err)
	}

	m, err := scanMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		logger.Error().Err(err).Interface("where", where).Msg("Error scanning member row")
		return nil, fmt.Errorf("error getting member: %w", err)
	}
	return m, nil
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetByCode retrieves a member by member code
func (r *MemberRepository) GetByCode(ctx context.Context, code string) (*models.Member, error) {
	return r.getBy(ctx, squirrel.Eq{"member_code": code})
}

// Update overwrites every writable column; member_code is never changed
func (r *MemberRepository) Update(ctx context.Context, m *models.Member) (*models.Member, error) {
	sql, args, err := r.sb.Update("members").
		SetMap(map[string]interface{}{
			"fullname":      m.Fullname,
			"date_of_birth": m.DateOfBirth,
			"address":       m.Address,
			"phone_number":  m.PhoneNumber,
			"email":         m.Email,
			"start_date":    m.StartDate,
			"expiry_date":   m.ExpiryDate,
			"is_active":     m.IsActive,
		}).
		Where(squirrel.Eq{"id": m.ID}).
		Suffix("RETURNING " + joinColumns(memberColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update member query: %w", err)
	}

	updated, err := scanMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		if mapped := translateMemberWriteError(err); mapped != nil {
			return nil, mapped
		}
		logger.Error().Err(err).Int64("memberID", m.ID).Msg("Error executing update member query")
		return nil, fmt.Errorf("error updating member: %w", err)
	}
	return updated, nil
}

// Delete removes a member by ID
func (r *MemberRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("members").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete member query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.NewConflictError("Member has book issues")
		}
		logger.Error().Err(err).Int64("memberID", id).Msg("Error executing delete member query")
		return fmt.Errorf("error deleting member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}
