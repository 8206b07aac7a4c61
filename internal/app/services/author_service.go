package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
)

// AuthorService defines the interface for author operations
type AuthorService interface {
	CreateAuthor(ctx context.Context, req *dto.CreateAuthorRequest) (*models.Author, error)
	GetAllAuthors(ctx context.Context) ([]*models.Author, error)
	GetAuthorByID(ctx context.Context, id int64) (*models.Author, error)
}

type authorServiceImpl struct {
	authorRepo AuthorRepository
}

// NewAuthorService creates a new author service
func NewAuthorService(authorRepo AuthorRepository) AuthorService {
	return &authorServiceImpl{authorRepo: authorRepo}
}

func (s *authorServiceImpl) CreateAuthor(ctx context.Context, req *dto.CreateAuthorRequest) (*models.Author, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, apperrors.NewValidationError("firstName and lastName are required")
	}

	author := &models.Author{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Bio:       req.Bio,
	}
	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

func (s *authorServiceImpl) GetAllAuthors(ctx context.Context) ([]*models.Author, error) {
	authors, err := s.authorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

func (s *authorServiceImpl) GetAuthorByID(ctx context.Context, id int64) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get author %d: %w", id, err)
	}
	return author, nil
}
