package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "subcommerce/internal/shared/errors"
)

func seedAccount(t *testing.T, e *authEnv) {
	t.Helper()
	e.expectToken()
	_, err := e.register().Execute(context.Background(), RegisterWithPasswordCommand{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
}

func TestLoginWithPassword_Success(t *testing.T) {
	e := newAuthEnv(t)
	seedAccount(t, e)
	key := "jane@example.com|10.0.0.1"
	e.limiter.On("TooManyAttempts", mock.Anything, key).Return(false, time.Duration(0), nil)
	e.limiter.On("Clear", mock.Anything, key).Return(nil)

	res, err := e.login().Execute(context.Background(), LoginWithPasswordCommand{
		Email:     "JANE@example.com",
		Password:  "secret123",
		IPAddress: "10.0.0.1",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", res.AccessToken)
	assert.NotNil(t, res.User.LastLoginAt())

	stored, err := e.users.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt())
	e.limiter.AssertExpectations(t)
}

func TestLoginWithPassword_GenericFailure(t *testing.T) {
	e := newAuthEnv(t)
	seedAccount(t, e)
	e.limiter.On("TooManyAttempts", mock.Anything, mock.Anything).Return(false, time.Duration(0), nil)
	e.limiter.On("Hit", mock.Anything, mock.Anything).Return(nil)

	_, wrongPassword := e.login().Execute(context.Background(), LoginWithPasswordCommand{Email: "jane@example.com", Password: "nope-nope", IPAddress: "10.0.0.1"})
	_, unknownUser := e.login().Execute(context.Background(), LoginWithPasswordCommand{Email: "who@example.com", Password: "secret123", IPAddress: "10.0.0.1"})

	for _, err := range []error{wrongPassword, unknownUser} {
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	}
	e.limiter.AssertNumberOfCalls(t, "Hit", 2)
}

func TestLoginWithPassword_Throttled(t *testing.T) {
	e := newAuthEnv(t)
	e.limiter.On("TooManyAttempts", mock.Anything, "jane@example.com|10.0.0.1").Return(true, 42*time.Second, nil)

	_, err := e.login().Execute(context.Background(), LoginWithPasswordCommand{Email: "jane@example.com", Password: "secret123", IPAddress: "10.0.0.1"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeRateLimited))
	e.jwt.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginWithPassword_LimiterErrorFailsOpen(t *testing.T) {
	e := newAuthEnv(t)
	seedAccount(t, e)
	e.limiter.On("TooManyAttempts", mock.Anything, mock.Anything).Return(false, time.Duration(0), errors.New("redis down"))
	e.limiter.On("Clear", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	res, err := e.login().Execute(context.Background(), LoginWithPasswordCommand{Email: "jane@example.com", Password: "secret123", IPAddress: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "token-1", res.AccessToken)
}

func TestLogout(t *testing.T) {
	e := newAuthEnv(t)
	e.sessions.On("Revoke", mock.Anything, "sess-9").Return(nil).Once()
	e.sessions.On("Revoke", mock.Anything, "sess-bad").Return(errors.New("redis down")).Once()
	uc := NewLogoutUseCase(e.sessions, e.log)

	assert.NoError(t, uc.Execute(context.Background(), LogoutCommand{SessionID: "sess-9"}))
	assert.Error(t, uc.Execute(context.Background(), LogoutCommand{SessionID: "sess-bad"}))
}

// recordingHasher remembers the hashes Verify was asked to check.
type recordingHasher struct {
	plainHasher
	checked []string
}

func (h *recordingHasher) Verify(password, hash string) error {
	h.checked = append(h.checked, hash)
	return h.plainHasher.Verify(password, hash)
}

func TestLoginWithPassword_UnknownEmailStillVerifies(t *testing.T) {
	e := newAuthEnv(t)
	e.limiter.On("TooManyAttempts", mock.Anything, mock.Anything).Return(false, time.Duration(0), nil)
	e.limiter.On("Hit", mock.Anything, mock.Anything).Return(nil)

	h := &recordingHasher{}
	uc := NewLoginWithPasswordUseCase(e.users, h, e.jwt, e.sessions, fixedSessionID, e.limiter, e.log)

	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Email:     "nobody@example.com",
		Password:  "secret123",
		IPAddress: "10.0.0.1",
	})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
	assert.Equal(t, []string{""}, h.checked)
}
