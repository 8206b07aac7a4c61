package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
	"github.com/wmad/library-backend/internal/pkg/helpers"
	"golang.org/x/sync/errgroup"
)

// BookService defines the interface for catalogue operations
type BookService interface {
	CreateBook(ctx context.Context, req *dto.BookRequest) (*models.Book, error)
	GetAllBooks(ctx context.Context) ([]*models.Book, error)
	GetBookByID(ctx context.Context, id int64) (*models.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (*models.Book, error)
	GetBooksPage(ctx context.Context, page, pageSize int) (*dto.PaginatedResponse[*models.Book], error)
	UpdateBook(ctx context.Context, id int64, req *dto.BookRequest) (*models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

type bookServiceImpl struct {
	bookRepo BookRepository
}

// NewBookService creates a new book service
func NewBookService(bookRepo BookRepository) BookService {
	return &bookServiceImpl{bookRepo: bookRepo}
}

// CreateBook stores a new book; title and isbn must be present
func (s *bookServiceImpl) CreateBook(ctx context.Context, req *dto.BookRequest) (*models.Book, error) {
	if req.Title == nil || req.ISBN == nil {
		return nil, apperrors.NewValidationError("title and isbn are required")
	}

	book := &models.Book{
		Title:           *req.Title,
		Authors:         req.Authors,
		ISBN:            *req.ISBN,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Edition:         req.Edition,
		Genre:           req.Genre,
		Language:        req.Language,
		NumberOfPages:   req.NumberOfPages,
		CoverImageURL:   req.CoverImageURL,
		ShelfLocation:   req.ShelfLocation,
		Description:     req.Description,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

// GetAllBooks returns every book
func (s *bookServiceImpl) GetAllBooks(ctx context.Context) ([]*models.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// GetBookByID returns one book
func (s *bookServiceImpl) GetBookByID(ctx context.Context, id int64) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}
	return book, nil
}

// GetBookByISBN returns the book with the given ISBN
func (s *bookServiceImpl) GetBookByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	book, err := s.bookRepo.GetByISBN(ctx, strings.TrimSpace(isbn))
	if err != nil {
		return nil, fmt.Errorf("failed to get book by isbn: %w", err)
	}
	return book, nil
}

// GetBooksPage returns one page of books ordered by title. The slice and the
// total count are fetched concurrently.
func (s *bookServiceImpl) GetBooksPage(ctx context.Context, page, pageSize int) (*dto.PaginatedResponse[*models.Book], error) {
	if page < 1 {
		page = helpers.DefaultPage
	}
	if pageSize < 1 {
		pageSize = helpers.DefaultPageSize
	}
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	var (
		books []*models.Book
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = s.bookRepo.ListPage(gctx, offset, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.bookRepo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to paginate books: %w", err)
	}

	return &dto.PaginatedResponse[*models.Book]{
		Data:        books,
		TotalCount:  total,
		TotalPages:  helpers.TotalPages(total, pageSize),
		CurrentPage: page,
	}, nil
}

// UpdateBook writes only the supplied fields
func (s *bookServiceImpl) UpdateBook(ctx context.Context, id int64, req *dto.BookRequest) (*models.Book, error) {
	changes := map[string]interface{}{}
	setIfPresent(changes, "title", req.Title)
	setIfPresent(changes, "isbn", req.ISBN)
	setIfPresent(changes, "authors", req.Authors)
	setIfPresent(changes, "publisher", req.Publisher)
	setIfPresent(changes, "edition", req.Edition)
	setIfPresent(changes, "genre", req.Genre)
	setIfPresent(changes, "language", req.Language)
	setIfPresent(changes, "cover_image_url", req.CoverImageURL)
	setIfPresent(changes, "shelf_location", req.ShelfLocation)
	setIfPresent(changes, "description", req.Description)
	if req.PublicationYear != nil {
		changes["publication_year"] = *req.PublicationYear
	}
	if req.NumberOfPages != nil {
		changes["number_of_pages"] = *req.NumberOfPages
	}

	book, err := s.bookRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", id, err)
	}
	return book, nil
}

// DeleteBook removes a book
func (s *bookServiceImpl) DeleteBook(ctx context.Context, id int64) error {
	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}

func setIfPresent(changes map[string]interface{}, column string, value *string) {
	if value != nil {
		changes[column] = *value
	}
}
