// Package errors defines the application error taxonomy and its HTTP mapping.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType is the stable, machine-readable error code returned to clients.
type ErrorType string

const (
	ErrorTypeValidation                  ErrorType = "validation_error"
	ErrorTypeNotFound                    ErrorType = "not_found"
	ErrorTypeConflict                    ErrorType = "conflict"
	ErrorTypeUnauthorized                ErrorType = "unauthorized"
	ErrorTypeForbidden                   ErrorType = "forbidden"
	ErrorTypeInternal                    ErrorType = "internal_error"
	ErrorTypeBadRequest                  ErrorType = "bad_request"
	ErrorTypeDuplicateActiveSubscription ErrorType = "duplicate_active_subscription"
	ErrorTypeSubscriptionAlreadyActive   ErrorType = "subscription_already_active"
	ErrorTypeMissingSignature            ErrorType = "missing_signature"
	ErrorTypeInvalidSignature            ErrorType = "invalid_signature"
	ErrorTypeMalformedPayload            ErrorType = "malformed_payload"
	ErrorTypeCheckoutCreationFailed      ErrorType = "checkout_creation_failed"
	ErrorTypeReconciliationFailed        ErrorType = "reconciliation_failed"
	ErrorTypeRateLimited                 ErrorType = "rate_limited"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	// cause is kept for logging and errors.Is/As; it is never serialised.
	cause error
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Retryable reports whether the caller (or the payment processor) may safely retry.
func (e *AppError) Retryable() bool {
	return e.Type == ErrorTypeCheckoutCreationFailed || e.Type == ErrorTypeReconciliationFailed
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{Type: t, Message: message, Code: code, Details: detail}
}

func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewDuplicateActiveSubscriptionError is returned when the user already holds
// an active, unexpired subscription for the product.
func NewDuplicateActiveSubscriptionError() *AppError {
	return newAppError(ErrorTypeDuplicateActiveSubscription, http.StatusBadRequest,
		"You already have an active subscription for this product", nil)
}

func NewSubscriptionAlreadyActiveError() *AppError {
	return newAppError(ErrorTypeSubscriptionAlreadyActive, http.StatusBadRequest,
		"Subscription is already active", nil)
}

func NewMissingSignatureError() *AppError {
	return newAppError(ErrorTypeMissingSignature, http.StatusBadRequest, "Missing signature", nil)
}

func NewInvalidSignatureError() *AppError {
	return newAppError(ErrorTypeInvalidSignature, http.StatusBadRequest, "Invalid signature", nil)
}

func NewMalformedPayloadError(details ...string) *AppError {
	return newAppError(ErrorTypeMalformedPayload, http.StatusBadRequest, "Invalid payload", details)
}

// NewCheckoutCreationFailedError wraps a gateway or store failure while creating a checkout session.
func NewCheckoutCreationFailedError(cause error) *AppError {
	e := newAppError(ErrorTypeCheckoutCreationFailed, http.StatusBadGateway,
		"Failed to create checkout session", nil)
	e.cause = cause
	return e
}

// NewReconciliationFailedError wraps a failure while applying a gateway event.
// The message stays generic so internals never reach the client.
func NewReconciliationFailedError(cause error) *AppError {
	e := newAppError(ErrorTypeReconciliationFailed, http.StatusInternalServerError,
		"Failed to process payment event", nil)
	e.cause = cause
	return e
}

func NewRateLimitedError(retryAfterSeconds int) *AppError {
	return newAppError(ErrorTypeRateLimited, http.StatusTooManyRequests,
		"Too many attempts, please try again later",
		[]string{fmt.Sprintf("retry after %d seconds", retryAfterSeconds)})
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsConflictError(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return strings.Contains(errStr, "unique constraint")
}
