package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/interfaces/http/middleware"
	"subcommerce/internal/shared/errors"
)

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid "+name, raw)
	}
	return uint(id), nil
}

func currentActor(c *gin.Context) (authorization.Actor, error) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return authorization.Actor{}, errors.NewUnauthorizedError("user not authenticated")
	}
	return actor, nil
}

// bindingError hides binder internals behind a validation error.
func bindingError(err error) error {
	return errors.NewValidationError("Invalid request body", err.Error())
}
