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

// AuthorRepository handles author database operations
type AuthorRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewAuthorRepository creates a new AuthorRepository
func NewAuthorRepository(db DBTX) *AuthorRepository {
	return &AuthorRepository{db: db, sb: psql}
}

// Create inserts an author and sets its ID
func (r *AuthorRepository) Create(ctx context.Context, a *models.Author) error {
	sql, args, err := r.sb.Insert("authors").
		Columns("first_name", "last_name", "bio").
		Values(a.FirstName, a.LastName, a.Bio).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create author query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID); err != nil {
		if dberrors.IsNotNullError(err) {
			return apperrors.NewValidationError("firstName and lastName are required")
		}
		logger.Error().Err(err).Msg("Error executing create author query")
		return fmt.Errorf("error creating author: %w", err)
	}
	return nil
}

// List returns every author ordered by id
func (r *AuthorRepository) List(ctx context.Context) ([]*models.Author, error) {
	sql, args, err := r.sb.Select("id", "first_name", "last_name", "bio").
		From("authors").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list authors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list authors query")
		return nil, fmt.Errorf("error querying authors: %w", err)
	}
	defer rows.Close()

	authors := []*models.Author{}
	for rows.Next() {
		a := &models.Author{}
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Bio); err != nil {
			return nil, fmt.Errorf("error scanning author row: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author rows: %w", err)
	}
	return authors, nil
}

// GetByID retrieves an author by ID
func (r *AuthorRepository) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	sql, args, err := r.sb.Select("id", "first_name", "last_name", "bio").
		From("authors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get author query: %w", err)
	}

	a := &models.Author{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Bio); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAuthorNotFound
		}
		logger.Error().Err(err).Int64("authorID", id).Msg("Error scanning author row")
		return nil, fmt.Errorf("error getting author: %w", err)
	}
	return a, nil
}
