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

const bookISBNConstraint = "books_isbn_key"

var bookColumns = []string{
	"id", "title", "authors", "isbn", "publisher", "publication_year", "edition",
	"genre", "language", "number_of_pages", "cover_image_url", "shelf_location", "description",
}

// BookRepository handles book database operations
type BookRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(db DBTX) *BookRepository {
	return &BookRepository{db: db, sb: psql}
}

func scanBook(row pgx.Row) (*models.Book, error) {
	b := &models.Book{}
	err := row.Scan(&b.ID, &b.Title, &b.Authors, &b.ISBN, &b.Publisher, &b.PublicationYear,
		&b.Edition, &b.Genre, &b.Language, &b.NumberOfPages, &b.CoverImageURL,
		&b.ShelfLocation, &b.Description)
	return b, err
}

func translateBookWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, bookISBNConstraint):
		return apperrors.ErrISBNExists
	case dberrors.IsDuplicateKeyError(err):
		return apperrors.ErrResourceAlreadyExists
	case dberrors.IsNotNullError(err):
		return apperrors.NewValidationError("title and isbn are required")
	}
	return nil
}

func (r *BookRepository) queryBooks(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Book, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list books query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list books query")
		return nil, fmt.Errorf("error querying books: %w", err)
	}
	defer rows.Close()

	books := []*models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}
	return books, nil
}

// Create inserts a book and sets its ID
func (r *BookRepository) Create(ctx context.Context, b *models.Book) error {
	sql, args, err := r.sb.Insert("books").
		Columns(bookColumns[1:]...).
		Values(b.Title, b.Authors, b.ISBN, b.Publisher, b.PublicationYear, b.Edition,
			b.Genre, b.Language, b.NumberOfPages, b.CoverImageURL, b.ShelfLocation, b.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create book query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&b.ID); err != nil {
		if mapped := translateBookWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Msg("Error executing create book query")
		return fmt.Errorf("error creating book: %w", err)
	}
	return nil
}

// List returns every book ordered by id
func (r *BookRepository) List(ctx context.Context) ([]*models.Book, error) {
	return r.queryBooks(ctx, r.sb.Select(bookColumns...).From("books").OrderBy("id ASC"))
}

// ListPage returns one page of books ordered by title
func (r *BookRepository) ListPage(ctx context.Context, offset, limit uint64) ([]*models.Book, error) {
	return r.queryBooks(ctx, r.sb.Select(bookColumns...).
		From("books").
		OrderBy("title ASC", "id ASC").
		Offset(offset).
		Limit(limit))
}

// Count returns the total number of books
func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("books").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count books query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting books")
		return 0, fmt.Errorf("error counting books: %w", err)
	}
	return total, nil
}

func (r *BookRepository) getBy(ctx context.Context, where squirrel.Eq) (*models.Book, error) {
	sql, args, err := r.sb.Select(bookColumns...).From("books").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get book query: %w", err)
	}

	b, err := scanBook(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookNotFound
		}
		logger.Error().Err(err).Interface("where", where).Msg("Error scanning book row")
		return nil, fmt.Errorf("error getting book: %w", err)
	}
	return b, nil
}

// GetByID retrieves a book by ID
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetByISBN retrieves a book by ISBN
func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	return r.getBy(ctx, squirrel.Eq{"isbn": isbn})
}

// Update writes only the given columns. An empty change set reads the row back.
func (r *BookRepository) Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.Book, error) {
	if len(changes) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := r.sb.Update("books").
		SetMap(changes).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(bookColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update book query: %w", err)
	}

	b, err := scanBook(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookNotFound
		}
		if mapped := translateBookWriteError(err); mapped != nil {
			return nil, mapped
		}
		logger.Error().Err(err).Int64("bookID", id).Msg("Error executing update book query")
		return nil, fmt.Errorf("error updating book: %w", err)
	}
	return b, nil
}

// Delete removes a book by ID
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("books").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete book query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.NewConflictError("Book has book issues")
		}
		logger.Error().Err(err).Int64("bookID", id).Msg("Error executing delete book query")
		return fmt.Errorf("error deleting book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}
	return nil
}
