package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
	"github.com/wmad/library-backend/internal/pkg/identifier"
	"github.com/wmad/library-backend/internal/pkg/logger"
	"github.com/wmad/library-backend/internal/pkg/metrics"
)

// MemberRepository is the persistence contract of MemberService
type MemberRepository interface {
	Create(ctx context.Context, m *models.Member) error
	List(ctx context.Context) ([]*models.Member, error)
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetByCode(ctx context.Context, code string) (*models.Member, error)
	Update(ctx context.Context, m *models.Member) (*models.Member, error)
	Delete(ctx context.Context, id int64) error
}

// UserAccountRepository is the persistence contract of UserAccountService and AuthService
type UserAccountRepository interface {
	Create(ctx context.Context, a *models.UserAccount) error
	List(ctx context.Context) ([]*models.UserAccount, error)
	GetByID(ctx context.Context, id int64) (*models.UserAccount, error)
	GetByEmailWithPassword(ctx context.Context, email string) (*models.UserAccount, error)
	Update(ctx context.Context, id int64, changes map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

// BookRepository is the persistence contract of BookService
type BookRepository interface {
	Create(ctx context.Context, b *models.Book) error
	List(ctx context.Context) ([]*models.Book, error)
	ListPage(ctx context.Context, offset, limit uint64) ([]*models.Book, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
}

// AuthorRepository is the persistence contract of AuthorService
type AuthorRepository interface {
	Create(ctx context.Context, a *models.Author) error
	List(ctx context.Context) ([]*models.Author, error)
	GetByID(ctx context.Context, id int64) (*models.Author, error)
}

// BookIssueRepository is the persistence contract of BookIssueService
type BookIssueRepository interface {
	Create(ctx context.Context, bi *models.BookIssue) error
	List(ctx context.Context) ([]*models.BookIssueDetail, error)
	GetByID(ctx context.Context, id int64) (*models.BookIssueDetail, error)
	Update(ctx context.Context, id int64, changes map[string]interface{}) (*models.BookIssue, error)
	Delete(ctx context.Context, id int64) error
}

// TokenIssuer signs access tokens
type TokenIssuer interface {
	GenerateToken(userID int64) (string, error)
}

// maxCodeAttempts bounds how many fresh codes are tried when an insert
// collides with an existing member or transaction code.
const maxCodeAttempts = 3

// insertWithCode calls insert with freshly generated codes until it succeeds,
// fails with something other than collision, or runs out of attempts.
func insertWithCode(kind string, newCode identifier.Generator, collision error, insert func(code string) error) error {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := newCode()
		if err != nil {
			return fmt.Errorf("failed to generate %s code: %w", kind, err)
		}

		err = insert(code)
		if err == nil {
			return nil
		}
		if !errors.Is(err, collision) {
			return err
		}

		metrics.RecordCodeCollision(kind)
		logger.Warn().Str("kind", kind).Int("attempt", attempt).Msg("Generated code already in use, retrying")
	}
	return fmt.Errorf("%w: %w", apperrors.ErrIdentifierRetryExhausted, collision)
}

func codeGenerator(gen identifier.Generator) identifier.Generator {
	if gen == nil {
		return identifier.NewCode
	}
	return gen
}
