package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "subcommerce/internal/shared/errors"
)

func TestRegisterWithPassword_Success(t *testing.T) {
	e := newAuthEnv(t)
	e.expectToken()

	res, err := e.register().Execute(context.Background(), RegisterWithPasswordCommand{
		Name:     "jane doe",
		Email:    "Jane@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", res.AccessToken)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, "jane@example.com", res.User.Email())
	assert.Equal(t, "Jane Doe", res.User.Name())
	assert.NotEqual(t, "secret123", res.User.PasswordHash())

	e.jwt.AssertExpectations(t)
	e.sessions.AssertExpectations(t)
}

func TestRegisterWithPassword_Validation(t *testing.T) {
	e := newAuthEnv(t)
	e.expectToken()
	_, err := e.register().Execute(context.Background(), RegisterWithPasswordCommand{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	tests := []struct {
		name string
		cmd  RegisterWithPasswordCommand
		msg  string
	}{
		{"short password", RegisterWithPasswordCommand{Name: "A", Email: "a@example.com", Password: "short"}, "at least 8"},
		{"taken email", RegisterWithPasswordCommand{Name: "B", Email: "JANE@example.com", Password: "secret123"}, "already been taken"},
		{"bad email", RegisterWithPasswordCommand{Name: "C", Email: "not-an-email", Password: "secret123"}, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.register().Execute(context.Background(), tt.cmd)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
			assert.Contains(t, appErr.Message, tt.msg)
		})
	}
}
