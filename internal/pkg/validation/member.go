// Package validation holds the payload contracts that must hold before a
// resource is persisted.
package validation

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
)

var validate = validator.New()

// IsValidMemberData reports whether every member field is present with the
// right JSON type. Values themselves are not checked: empty strings and
// is_active=false are accepted.
func IsValidMemberData(candidate *dto.MemberRequest) bool {
	if candidate == nil {
		return false
	}
	return validate.Struct(candidate) == nil
}

// ParseMemberPayload decodes raw and applies IsValidMemberData. A type
// mismatch (a number for fullname, a string for is_active, an unparseable
// date) is reported the same way as a missing field.
func ParseMemberPayload(raw []byte) (*dto.MemberRequest, error) {
	var req dto.MemberRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	if !IsValidMemberData(&req) {
		return nil, apperrors.ErrValidationFailed
	}
	return &req, nil
}
