package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessions SessionStore
	logger   logger.Interface
}

func NewLogoutUseCase(sessions SessionStore, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.sessions.Revoke(ctx, cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to revoke session", "error", err, "session_id", cmd.SessionID)
		return fmt.Errorf("failed to logout: %w", err)
	}

	uc.logger.Infow("user logged out successfully", "session_id", cmd.SessionID)
	return nil
}
