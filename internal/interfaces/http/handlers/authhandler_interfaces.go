package handlers

import (
	"context"

	"subcommerce/internal/application/user/usecases"
)

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterWithPasswordCommand) (*usecases.AuthResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*usecases.AuthResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}
