package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches by code so wrapped instances compare equal to the sentinel
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// NotFoundf builds a NotFound error naming the missing record
func NotFoundf(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf(format, args...),
	}
}

// Predefined domain errors
var (
	// Generic persistence errors
	ErrNotFound = NewDomainError("NOT_FOUND", "record not found")
	ErrConflict = NewDomainError("CONFLICT", "record already exists")

	// User errors
	ErrUserNotFound       = NewDomainError("USER_NOT_FOUND", "user not found")
	ErrEmailExists        = NewDomainError("EMAIL_EXISTS", "email already exists")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "incorrect email or password")
	ErrAccountDeactivated = NewDomainError("ACCOUNT_DEACTIVATED", "account is deactivated, please activate your account")

	// Authentication errors
	ErrUnauthorized = NewDomainError("UNAUTHORIZED", "you are not logged in, please login to access this route")
	ErrForbidden    = NewDomainError("FORBIDDEN", "you are not allowed to access this route")
	ErrInvalidToken = NewDomainError("INVALID_TOKEN", "invalid or expired token")

	// Validation errors
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "invalid input")
	ErrIncorrectPassword = NewDomainError("INCORRECT_PASSWORD", "current password is incorrect")

	// Password reset errors
	ErrResetCodeInvalid    = NewDomainError("RESET_CODE_INVALID", "reset code is invalid or expired")
	ErrResetCodeUnverified = NewDomainError("RESET_CODE_UNVERIFIED", "reset code not verified")
	ErrEmailSendFailed     = NewDomainError("EMAIL_SEND_FAILED", "there is an error in sending email")

	// Shopping errors
	ErrCouponInvalid    = NewDomainError("COUPON_INVALID", "coupon is invalid or expired")
	ErrCartEmpty        = NewDomainError("CART_EMPTY", "there is no cart for this user")
	ErrReviewExists     = NewDomainError("REVIEW_EXISTS", "you already reviewed this product")
	ErrOutOfStock       = NewDomainError("OUT_OF_STOCK", "requested quantity exceeds available stock")
	ErrWebhookSignature = NewDomainError("WEBHOOK_SIGNATURE", "webhook signature verification failed")

	// System errors
	ErrInternal = NewDomainError("INTERNAL_ERROR", "internal server error")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	// Default to internal server error for unknown errors
	return http.StatusInternalServerError
}

// domainErrorToHTTPStatus maps specific domain errors to HTTP status codes
func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request
	case "INVALID_INPUT", "RESET_CODE_INVALID", "RESET_CODE_UNVERIFIED",
		"COUPON_INVALID", "OUT_OF_STOCK", "WEBHOOK_SIGNATURE":
		return http.StatusBadRequest

	// 401 Unauthorized
	case "UNAUTHORIZED", "INVALID_CREDENTIALS", "INVALID_TOKEN",
		"INCORRECT_PASSWORD", "ACCOUNT_DEACTIVATED":
		return http.StatusUnauthorized

	// 403 Forbidden
	case "FORBIDDEN":
		return http.StatusForbidden

	// 404 Not Found
	case "NOT_FOUND", "USER_NOT_FOUND", "CART_EMPTY":
		return http.StatusNotFound

	// 409 Conflict
	case "CONFLICT", "EMAIL_EXISTS", "REVIEW_EXISTS":
		return http.StatusConflict

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
