package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 30)

	pair, err := svc.Generate(42, "sess-1", "user")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, int64(30*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "user", claims.Role)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_RejectsOtherSecret(t *testing.T) {
	pair, err := NewJWTService("secret-a", 30).Generate(1, "sess", "admin")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 30).Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("secret", 30)
	claims := &Claims{
		UserID:    1,
		SessionID: "sess",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{UserID: 1, SessionID: "sess"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService("secret", 30).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RequiresSession(t *testing.T) {
	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTService("secret", 30).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	assert.Equal(t, time.Hour, NewJWTService("s", 0).AccessTTL())
}
