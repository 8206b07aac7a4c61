package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
	"github.com/wmad/library-backend/internal/pkg/auth"
	"github.com/wmad/library-backend/internal/pkg/logger"
)

// AuthService handles staff registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	accountRepo UserAccountRepository
	tokens      TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(accountRepo UserAccountRepository, tokens TokenIssuer) AuthService {
	return &authServiceImpl{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (s *authServiceImpl) respond(account *models.UserAccount) (*dto.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &dto.AuthResponse{
		Token: token,
		User: dto.AuthUser{
			ID:         account.ID,
			Username:   account.Username,
			Email:      account.Email,
			UserRoleID: account.UserRoleID,
			Active:     account.IsActive,
		},
	}, nil
}

// Register creates an account and returns a token for it
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	account, err := createAccount(ctx, s.accountRepo, req.UserRoleID, req.Email, req.Username, req.Password, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	logger.Info().Int64("userID", account.ID).Msg("User account registered")
	return s.respond(account)
}

// Login verifies the credentials. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := s.accountRepo.GetByEmailWithPassword(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		logger.Warn().Int64("userID", account.ID).Msg("Login failed: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.respond(account)
}
