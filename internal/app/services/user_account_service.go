package services

import (
	"context"
	"fmt"

	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
	"github.com/wmad/library-backend/internal/pkg/auth"
)

// UserAccountService defines the interface for staff account operations.
// Every returned account is the restricted projection.
type UserAccountService interface {
	CreateUserAccount(ctx context.Context, req *dto.CreateUserAccountRequest) (*models.UserAccount, error)
	GetAllUserAccounts(ctx context.Context) ([]*models.UserAccount, error)
	GetUserAccountByID(ctx context.Context, id int64) (*models.UserAccount, error)
	UpdateUserAccount(ctx context.Context, id int64, req *dto.UpdateUserAccountRequest) (*models.UserAccount, error)
	DeleteUserAccount(ctx context.Context, id int64) error
}

type userAccountServiceImpl struct {
	accountRepo UserAccountRepository
}

// NewUserAccountService creates a new user account service
func NewUserAccountService(accountRepo UserAccountRepository) UserAccountService {
	return &userAccountServiceImpl{accountRepo: accountRepo}
}

// createAccount hashes the password, applies the flag defaults and stores the
// account. Values are stored as given; uniqueness is left to the repository.
func createAccount(ctx context.Context, repo UserAccountRepository, roleID int64, email, username, password *string, isActivated, isActive *bool) (*models.UserAccount, error) {
	if email == nil || username == nil || password == nil || roleID <= 0 {
		return nil, apperrors.NewValidationError("email, username, password and user_role_id are required")
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.UserAccount{
		UserRoleID:  roleID,
		Email:       *email,
		Username:    *username,
		Password:    hash,
		IsActivated: false,
		IsActive:    true,
	}
	if isActivated != nil {
		account.IsActivated = *isActivated
	}
	if isActive != nil {
		account.IsActive = *isActive
	}

	if err := repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// CreateUserAccount stores a new account and returns its restricted projection
func (s *userAccountServiceImpl) CreateUserAccount(ctx context.Context, req *dto.CreateUserAccountRequest) (*models.UserAccount, error) {
	account, err := createAccount(ctx, s.accountRepo, req.UserRoleID, req.Email, req.Username, req.Password, req.IsActivated, req.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to create user account: %w", err)
	}

	created, err := s.accountRepo.GetByID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created user account: %w", err)
	}
	return created, nil
}

// GetAllUserAccounts returns every account
func (s *userAccountServiceImpl) GetAllUserAccounts(ctx context.Context) ([]*models.UserAccount, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user accounts: %w", err)
	}
	return accounts, nil
}

// GetUserAccountByID returns one account
func (s *userAccountServiceImpl) GetUserAccountByID(ctx context.Context, id int64) (*models.UserAccount, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user account %d: %w", id, err)
	}
	return account, nil
}

// UpdateUserAccount applies the supplied fields; a new password is re-hashed
func (s *userAccountServiceImpl) UpdateUserAccount(ctx context.Context, id int64, req *dto.UpdateUserAccountRequest) (*models.UserAccount, error) {
	changes := map[string]interface{}{}
	if req.UserRoleID != nil {
		changes["user_role_id"] = *req.UserRoleID
	}
	if req.Email != nil {
		changes["email"] = *req.Email
	}
	if req.Username != nil {
		changes["username"] = *req.Username
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		changes["password"] = hash
	}
	if req.IsActivated != nil {
		changes["is_activated"] = *req.IsActivated
	}
	if req.IsActive != nil {
		changes["is_active"] = *req.IsActive
	}

	if len(changes) > 0 {
		if err := s.accountRepo.Update(ctx, id, changes); err != nil {
			return nil, fmt.Errorf("failed to update user account %d: %w", id, err)
		}
	}

	return s.GetUserAccountByID(ctx, id)
}

// DeleteUserAccount removes an account
func (s *userAccountServiceImpl) DeleteUserAccount(ctx context.Context, id int64) error {
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user account %d: %w", id, err)
	}
	return nil
}
