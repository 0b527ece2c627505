package http

import (
	"github.com/google/uuid"

	"subcommerce/internal/application/user/usecases"
	"subcommerce/internal/infrastructure/auth"
)

// jwtServiceAdapter adapts auth.JWTService to usecases.JWTService interface
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, sessionID string, role string) (*usecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, sessionID, role)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenPair{
		AccessToken: pair.AccessToken,
		ExpiresIn:   pair.ExpiresIn,
	}, nil
}

// newSessionID names the redis session bound to each issued token.
func newSessionID() string {
	return uuid.NewString()
}
