package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/shared/constants"
	"subcommerce/internal/shared/logger"
	"subcommerce/internal/shared/utils"
)

type Authorizer interface {
	Authorize(ctx context.Context, actor authorization.Actor, action authorization.Action, resource authorization.Resource) (bool, error)
}

type PermissionMiddleware struct {
	authorizer Authorizer
	logger     logger.Interface
}

func NewPermissionMiddleware(authorizer Authorizer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		authorizer: authorizer,
		logger:     logger,
	}
}

// RequirePermission gates collection-level actions. Actions on a single
// owned record are checked by the use case, which knows the owner.
func (m *PermissionMiddleware) RequirePermission(resourceType string, action authorization.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.authorizer.Authorize(c.Request.Context(), actor, action, authorization.Resource{Type: resourceType})
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", actor.UserID, "resource", resourceType, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", actor.UserID, "role", actor.Role, "resource", resourceType, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ActorFromContext returns the authenticated actor set by RequireAuth.
func ActorFromContext(c *gin.Context) (authorization.Actor, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return authorization.Actor{}, false
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return authorization.Actor{}, false
	}
	return authorization.Actor{UserID: id, Role: c.GetString(constants.ContextKeyUserRole)}, true
}
