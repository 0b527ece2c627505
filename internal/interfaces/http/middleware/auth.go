package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"subcommerce/internal/infrastructure/auth"
	"subcommerce/internal/shared/constants"
	"subcommerce/internal/shared/logger"
	"subcommerce/internal/shared/utils"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// SessionChecker reports whether a token's session is still live.
type SessionChecker interface {
	Active(ctx context.Context, sessionID string, userID uint) (bool, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	sessions SessionChecker
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, sessions SessionChecker, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth accepts "Authorization: Bearer <token>" and rejects tokens
// whose session was revoked by logout.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		active, err := m.sessions.Active(c.Request.Context(), claims.SessionID, claims.UserID)
		if err != nil {
			m.logger.Errorw("failed to check session", "error", err, "user_id", claims.UserID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "session could not be verified")
			c.Abort()
			return
		}
		if !active {
			utils.ErrorResponse(c, http.StatusUnauthorized, "session has been revoked")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeySessionID, claims.SessionID)
		c.Set(constants.ContextKeyUserRole, claims.Role)

		c.Next()
	}
}
