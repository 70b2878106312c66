// Package errors defines the application-specific business errors.
package errors

import (
	"cafex/internal/domain/service"
	"cafex/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	ErrorCode() string         // Business error code
	Message() string           // User-friendly error message
	Severity() service.Severity // Display severity for the notification layer
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	errorCode string
	message   string
	severity  service.Severity
}

// NewBaseError creates a new base error.
func NewBaseError(errorCode, message string, severity service.Severity) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		severity:  severity,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Severity returns the display severity.
func (e *BaseError) Severity() service.Severity {
	return e.severity
}

// Predefined error types
var (
	// Authorization failures

	ErrLoginRequired = NewBaseError(
		"LOGIN_REQUIRED",
		"Login required",
		service.SeverityError,
	)

	ErrAdminRequired = NewBaseError(
		"ADMIN_REQUIRED",
		"Admin access required",
		service.SeverityError,
	)

	ErrInvalidCredentials = NewBaseError(
		"INVALID_CREDENTIALS",
		"Invalid email/phone or password",
		service.SeverityError,
	)

	// Precondition failures

	ErrNotEnoughPoints = NewBaseError(
		"NOT_ENOUGH_POINTS",
		"Not enough points!",
		service.SeverityError,
	)

	ErrRewardPriceTooHigh = NewBaseError(
		"REWARD_PRICE_TOO_HIGH",
		"Product price too high",
		service.SeverityError,
	)

	ErrCannotCancel = NewBaseError(
		"CANNOT_CANCEL",
		"Cannot cancel",
		service.SeverityError,
	)

	ErrSelfDeletion = NewBaseError(
		"SELF_DELETION",
		"Cannot delete self",
		service.SeverityError,
	)

	ErrEmptyCart = NewBaseError(
		"EMPTY_CART",
		"Cart is empty",
		service.SeverityError,
	)

	// Account errors

	ErrUserAlreadyExists = NewBaseError(
		"USER_ALREADY_EXISTS",
		"An account with this email or phone already exists",
		service.SeverityError,
	)

	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"Input validation failed",
		service.SeverityError,
	)

	// General errors

	ErrNotFound = NewBaseError(
		"NOT_FOUND",
		"Resource not found",
		service.SeverityError,
	)
)
