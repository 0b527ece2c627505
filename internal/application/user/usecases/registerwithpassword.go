package usecases

import (
	"context"
	"errors"
	"fmt"

	"subcommerce/internal/domain/user"
	apperrors "subcommerce/internal/shared/errors"
	"subcommerce/internal/shared/logger"
)

const MinPasswordLength = 8

type RegisterWithPasswordCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	issuer         tokenIssuer
	logger         logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	jwtService JWTService,
	sessions SessionStore,
	newSessionID SessionIDGenerator,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		issuer:         tokenIssuer{jwtService: jwtService, sessions: sessions, newID: newSessionID},
		logger:         logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*AuthResult, error) {
	if len(cmd.Password) < MinPasswordLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, user.NormalizeEmail(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.NewValidationError("The email has already been taken")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, hash)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailAlreadyTaken) || apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewValidationError("The email has already been taken")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	result, err := uc.issuer.issue(ctx, u)
	if err != nil {
		uc.logger.Errorw("failed to issue token after registration", "user_id", u.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", u.ID())
	return result, nil
}
