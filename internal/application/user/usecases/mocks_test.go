package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"subcommerce/internal/infrastructure/persistence/testdb"
	"subcommerce/internal/infrastructure/repository"
	"subcommerce/internal/shared/logger"
)

var errBadPassword = errors.New("password mismatch")

// plainHasher stores "hashed:"+password so tests stay fast.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errBadPassword
	}
	return nil
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) Generate(userID uint, sessionID, role string) (*TokenPair, error) {
	args := m.Called(userID, sessionID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenPair), args.Error(1)
}

func (m *mockJWT) AccessTTL() time.Duration { return time.Hour }

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	return m.Called(ctx, sessionID, userID, ttl).Error(0)
}

func (m *mockSessions) Revoke(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type mockLimiter struct {
	mock.Mock
}

func (m *mockLimiter) TooManyAttempts(ctx context.Context, key string) (bool, time.Duration, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *mockLimiter) Hit(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockLimiter) Clear(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func fixedSessionID() string { return "sess-1" }

type authEnv struct {
	users    *repository.UserRepository
	jwt      *mockJWT
	sessions *mockSessions
	limiter  *mockLimiter
	log      logger.Interface
}

func newAuthEnv(t *testing.T) *authEnv {
	return &authEnv{
		users:    repository.NewUserRepository(testdb.New(t)),
		jwt:      new(mockJWT),
		sessions: new(mockSessions),
		limiter:  new(mockLimiter),
		log:      logger.NewNop(),
	}
}

func (e *authEnv) register() *RegisterWithPasswordUseCase {
	return NewRegisterWithPasswordUseCase(e.users, plainHasher{}, e.jwt, e.sessions, fixedSessionID, e.log)
}

func (e *authEnv) login() *LoginWithPasswordUseCase {
	return NewLoginWithPasswordUseCase(e.users, plainHasher{}, e.jwt, e.sessions, fixedSessionID, e.limiter, e.log)
}

func (e *authEnv) expectToken() {
	e.jwt.On("Generate", mock.Anything, "sess-1", "user").Return(&TokenPair{AccessToken: "token-1", ExpiresIn: 3600}, nil)
	e.sessions.On("Save", mock.Anything, "sess-1", mock.Anything, time.Hour).Return(nil)
}
