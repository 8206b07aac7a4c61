package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/pkg/apperrors"
	"github.com/wmad/library-backend/internal/pkg/logger"
)

type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{apperrors.ErrMemberNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Member not found"},
	{apperrors.ErrUserAccountNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User account not found"},
	{apperrors.ErrBookNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Book not found"},
	{apperrors.ErrAuthorNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Author not found"},
	{apperrors.ErrBookIssueNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Book issue not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},

	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Unauthorized"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Unauthorized"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Unauthorized"},

	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request"},
	{apperrors.ErrInvalidReference, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Invalid reference"},

	{apperrors.ErrMemberCodeExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Member code already exists"},
	{apperrors.ErrTransactionCodeExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Transaction code already exists"},
	{apperrors.ErrIdentifierRetryExhausted, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Could not generate a unique code"},
	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
	{apperrors.ErrUsernameExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username already exists"},
	{apperrors.ErrISBNExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "ISBN already exists"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Conflict"},
}

// HandleAPIError maps err to a status code and a client-safe body. The raw
// error text is logged, never returned.
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		message := m.message
		// Messages on CustomError are written by us and safe to expose.
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Message != "" {
			message = custom.Message
		}

		logger.Warn().Err(err).
			Str("path", c.Request.URL.Path).
			Int("status", m.status).
			Msg("Request failed")
		AbortWithError(c, m.status, m.code, message)
		return
	}

	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")
	AbortWithError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
}

// AbortWithError writes the standard error body and stops the chain
func AbortWithError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message))
}
