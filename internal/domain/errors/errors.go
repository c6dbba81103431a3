package errors

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"authcore/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches on error code so that copies made by WithDetails still compare equal
// to the predefined value they were derived from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Identity conflicts
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"User with this email already exists",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"Username is already taken",
		"",
	)

	ErrExternalIdentityTaken = NewBaseError(
		http.StatusConflict,
		"EXTERNAL_IDENTITY_TAKEN",
		"This external account is already linked to another user",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// One-time code errors
	ErrOtpNotFound = NewBaseError(
		http.StatusNotFound,
		"OTP_NOT_FOUND",
		"No pending verification found for this email",
		"",
	)

	ErrOtpExpired = NewBaseError(
		http.StatusGone,
		"OTP_EXPIRED",
		"OTP has expired",
		"",
	)

	ErrOtpMaxAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"OTP_MAX_ATTEMPTS",
		"Maximum OTP attempts exceeded. Please request a new OTP",
		"",
	)

	ErrOtpInvalid = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID",
		"Invalid or expired OTP",
		"",
	)

	ErrPendingSignupMissing = NewBaseError(
		http.StatusBadRequest,
		"PENDING_SIGNUP_MISSING",
		"Signup data not found. Please start the signup again",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Please wait before requesting a new OTP",
		"",
	)

	ErrEmailDispatchFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"EMAIL_DISPATCH_FAILED",
		"Failed to send verification email. Please try again",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Not authorized to access this resource",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrTokenTypeMismatch = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_TYPE_MISMATCH",
		"Invalid token type",
		"",
	)

	ErrRefreshTokenRevoked = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_REVOKED",
		"Refresh token is no longer valid",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Session not found",
		"",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"External authentication failed",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Invalid or expired OAuth state",
		"",
	)

	ErrOAuthEmailMissing = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_EMAIL_MISSING",
		"No email found in external profile",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// RateLimitError reports how long the caller has to wait before a new code can be issued.
type RateLimitError struct {
	RetryAfter time.Duration
}

// NewRateLimitError creates a RateLimitError for the remaining cooldown
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}

// RetryAfterSeconds rounds the remaining wait up to whole seconds
func (e *RateLimitError) RetryAfterSeconds() int {
	return int(math.Ceil(e.RetryAfter.Seconds()))
}

func (e *RateLimitError) Error() string {
	return e.Message()
}

// Unwrap lets errors.Is(err, ErrRateLimited) match
func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

func (e *RateLimitError) HTTPCode() int {
	return http.StatusTooManyRequests
}

func (e *RateLimitError) ErrorCode() string {
	return ErrRateLimited.ErrorCode()
}

func (e *RateLimitError) Message() string {
	return fmt.Sprintf("Please wait %d seconds before requesting a new OTP", e.RetryAfterSeconds())
}

func (e *RateLimitError) Details() string {
	return fmt.Sprintf("retryAfterSeconds=%d", e.RetryAfterSeconds())
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// IsIdentityUnavailable reports whether err says the email or username of a pending identity is
// already claimed, or the account a code was issued for no longer exists.
func IsIdentityUnavailable(err error) bool {
	return errors.IsAny(err, ErrEmailTaken, ErrUsernameTaken, ErrUserNotFound)
}
