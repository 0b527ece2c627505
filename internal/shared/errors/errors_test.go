package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomyStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		typ  ErrorType
		code int
	}{
		{"duplicate active", NewDuplicateActiveSubscriptionError(), ErrorTypeDuplicateActiveSubscription, http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("x"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("x"), ErrorTypeForbidden, http.StatusForbidden},
		{"not found", NewNotFoundError("x"), ErrorTypeNotFound, http.StatusNotFound},
		{"missing signature", NewMissingSignatureError(), ErrorTypeMissingSignature, http.StatusBadRequest},
		{"invalid signature", NewInvalidSignatureError(), ErrorTypeInvalidSignature, http.StatusBadRequest},
		{"malformed payload", NewMalformedPayloadError(), ErrorTypeMalformedPayload, http.StatusBadRequest},
		{"checkout failed", NewCheckoutCreationFailedError(nil), ErrorTypeCheckoutCreationFailed, http.StatusBadGateway},
		{"reconciliation failed", NewReconciliationFailedError(nil), ErrorTypeReconciliationFailed, http.StatusInternalServerError},
		{"rate limited", NewRateLimitedError(60), ErrorTypeRateLimited, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestReconciliationFailedWrapsCause(t *testing.T) {
	cause := errors.New("deadlock found")
	err := fmt.Errorf("failed to reconcile: %w", NewReconciliationFailedError(cause))

	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.True(t, appErr.Retryable())
	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, appErr.Message, "deadlock")
}

func TestRetryableOnlyForTransientErrors(t *testing.T) {
	assert.True(t, NewCheckoutCreationFailedError(nil).Retryable())
	assert.False(t, NewInvalidSignatureError().Retryable())
	assert.False(t, NewDuplicateActiveSubscriptionError().Retryable())
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062: Duplicate entry 'TXN-1' for key 'transaction_id'")))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: payments.transaction_id")))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
