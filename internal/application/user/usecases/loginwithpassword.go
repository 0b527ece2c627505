package usecases

import (
	"context"
	"fmt"
	"math"

	"subcommerce/internal/domain/user"
	"subcommerce/internal/shared/biztime"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email     string
	Password  string
	IPAddress string
}

// ThrottleKey identifies a login bucket by client address and email.
func (c LoginWithPasswordCommand) ThrottleKey() string {
	return user.NormalizeEmail(c.Email) + "|" + c.IPAddress
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	issuer         tokenIssuer
	limiter        LoginLimiter
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	jwtService JWTService,
	sessions SessionStore,
	newSessionID SessionIDGenerator,
	limiter LoginLimiter,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		issuer:         tokenIssuer{jwtService: jwtService, sessions: sessions, newID: newSessionID},
		limiter:        limiter,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*AuthResult, error) {
	key := cmd.ThrottleKey()

	if uc.limiter != nil {
		limited, retryAfter, err := uc.limiter.TooManyAttempts(ctx, key)
		if err != nil {
			// fail open; the limiter is an abuse guard, not an auth factor
			uc.logger.Warnw("login limiter unavailable", "error", err)
		} else if limited {
			uc.logger.Warnw("login throttled", "ip", cmd.IPAddress)
			return nil, apperrors.NewRateLimitedError(int(math.Ceil(retryAfter.Seconds())))
		}
	}

	u, err := uc.userRepo.GetByEmail(ctx, user.NormalizeEmail(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	storedHash := ""
	if u != nil {
		storedHash = u.PasswordHash()
	}
	// verify even for unknown emails so response time does not reveal accounts
	if err := uc.passwordHasher.Verify(cmd.Password, storedHash); u == nil || err != nil {
		uc.recordFailure(ctx, key)
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	if uc.limiter != nil {
		if err := uc.limiter.Clear(ctx, key); err != nil {
			uc.logger.Warnw("failed to clear login attempts", "error", err)
		}
	}

	u.RecordLogin(biztime.NowUTC())
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record last login", "user_id", u.ID(), "error", err)
	}

	result, err := uc.issuer.issue(ctx, u)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID())
	return result, nil
}

func (uc *LoginWithPasswordUseCase) recordFailure(ctx context.Context, key string) {
	if uc.limiter == nil {
		return
	}
	if err := uc.limiter.Hit(ctx, key); err != nil {
		uc.logger.Warnw("failed to record login attempt", "error", err)
	}
}
