package usecases

import (
	"context"
	"fmt"

	"subcommerce/internal/domain/user"
)

type AuthResult struct {
	User        *user.User
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

type tokenIssuer struct {
	jwtService JWTService
	sessions   SessionStore
	newID      SessionIDGenerator
}

func (t tokenIssuer) issue(ctx context.Context, u *user.User) (*AuthResult, error) {
	sessionID := t.newID()

	tokens, err := t.jwtService.Generate(u.ID(), sessionID, u.Role().String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := t.sessions.Save(ctx, sessionID, u.ID(), t.jwtService.AccessTTL()); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &AuthResult{
		User:        u,
		AccessToken: tokens.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   tokens.ExpiresIn,
	}, nil
}
