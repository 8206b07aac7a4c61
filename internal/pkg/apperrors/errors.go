package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")
	ErrInvalidReference      = errors.New("referenced resource does not exist")
	ErrDanglingReference     = errors.New("related resource could not be resolved")

	// Authentication errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Member errors
var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrMemberCodeExists = errors.New("member code already exists")
)

// User account errors
var (
	ErrUserAccountNotFound = errors.New("user account not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUsernameExists      = errors.New("username already exists")
)

// Book errors
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrISBNExists     = errors.New("isbn already exists")
	ErrAuthorNotFound = errors.New("author not found")
)

// Book issue errors
var (
	ErrBookIssueNotFound        = errors.New("book issue not found")
	ErrTransactionCodeExists    = errors.New("transaction code already exists")
	ErrIdentifierRetryExhausted = errors.New("could not generate a unique code")
)

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying a client-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
