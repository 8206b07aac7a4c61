package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wmad/library-backend/internal/app/models"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
	"github.com/wmad/library-backend/internal/pkg/identifier"
	"github.com/wmad/library-backend/internal/pkg/validation"
)

// InvalidMemberDataMessage is returned whenever a member payload is rejected
const InvalidMemberDataMessage = "Invalid member data"

// MemberService defines the interface for member-related operations
type MemberService interface {
	CreateMember(ctx context.Context, req *dto.MemberRequest) (*models.Member, error)
	GetAllMembers(ctx context.Context) ([]*models.Member, error)
	GetMemberByID(ctx context.Context, id int64) (*models.Member, error)
	GetMemberByCode(ctx context.Context, code string) (*models.Member, error)
	UpdateMember(ctx context.Context, id int64, req *dto.MemberRequest) (*models.Member, error)
	DeleteMember(ctx context.Context, id int64) error
}

type memberServiceImpl struct {
	memberRepo MemberRepository
	newCode    identifier.Generator
}

// NewMemberService creates a new member service. A nil generator means identifier.NewCode.
func NewMemberService(memberRepo MemberRepository, newCode identifier.Generator) MemberService {
	return &memberServiceImpl{
		memberRepo: memberRepo,
		newCode:    codeGenerator(newCode),
	}
}

func memberFromRequest(req *dto.MemberRequest) (*models.Member, error) {
	if !validation.IsValidMemberData(req) {
		return nil, apperrors.NewValidationError(InvalidMemberDataMessage)
	}
	return &models.Member{
		Fullname:    *req.Fullname,
		DateOfBirth: req.DateOfBirth.Time,
		Address:     *req.Address,
		PhoneNumber: *req.PhoneNumber,
		Email:       *req.Email,
		StartDate:   req.StartDate.Time,
		ExpiryDate:  req.ExpiryDate.Time,
		IsActive:    *req.IsActive,
	}, nil
}

// CreateMember validates the payload and stores it under a new member code
func (s *memberServiceImpl) CreateMember(ctx context.Context, req *dto.MemberRequest) (*models.Member, error) {
	member, err := memberFromRequest(req)
	if err != nil {
		return nil, err
	}

	err = insertWithCode("member", s.newCode, apperrors.ErrMemberCodeExists, func(code string) error {
		member.MemberCode = code
		return s.memberRepo.Create(ctx, member)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

// GetAllMembers returns every member
func (s *memberServiceImpl) GetAllMembers(ctx context.Context) ([]*models.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// GetMemberByID returns one member
func (s *memberServiceImpl) GetMemberByID(ctx context.Context, id int64) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get member %d: %w", id, err)
	}
	return member, nil
}

// GetMemberByCode looks a member up by its code, case-insensitively
func (s *memberServiceImpl) GetMemberByCode(ctx context.Context, code string) (*models.Member, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != identifier.CodeLength {
		return nil, apperrors.ErrMemberNotFound
	}
	member, err := s.memberRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get member by code: %w", err)
	}
	return member, nil
}

// UpdateMember replaces every writable field of the member
func (s *memberServiceImpl) UpdateMember(ctx context.Context, id int64, req *dto.MemberRequest) (*models.Member, error) {
	member, err := memberFromRequest(req)
	if err != nil {
		return nil, err
	}
	member.ID = id

	updated, err := s.memberRepo.Update(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("failed to update member %d: %w", id, err)
	}
	return updated, nil
}

// DeleteMember removes a member
func (s *memberServiceImpl) DeleteMember(ctx context.Context, id int64) error {
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete member %d: %w", id, err)
	}
	return nil
}
