// Package error defines domain-specific errors for the VendaGame application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a profile is not found in the system.
	ErrUserNotFound = errors.New("profile not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrMissingCompanyName is returned when registration omits the company name.
	ErrMissingCompanyName = errors.New("company name is required")

	// ErrInvalidRole is returned when an unknown profile role is requested.
	ErrInvalidRole = errors.New("invalid profile role")

	// ErrUnauthorized is returned when the caller lacks the required role.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrCompanyNotFound is returned when a company is not found in the system.
	ErrCompanyNotFound = errors.New("company not found")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeEmailExists        AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail       AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields      AuthErrorCode = "AUTH-010004"
	ErrCodeMissingCompanyName AuthErrorCode = "AUTH-010005"
	ErrCodeInvalidRole        AuthErrorCode = "AUTH-010006"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"

	// Authorization errors (04XXXX)
	ErrCodeUnauthorized AuthErrorCode = "AUTH-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
