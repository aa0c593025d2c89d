package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itdesk/internal/infrastructure/auth"
	"itdesk/internal/shared/constants"
	"itdesk/internal/shared/logger"
	"itdesk/internal/shared/utils"
)

// SessionVerifier validates an admin session token.
type SessionVerifier interface {
	Verify(token string) (*auth.SessionClaims, error)
}

type AdminAuthMiddleware struct {
	sessions SessionVerifier
	logger   logger.Interface
}

func NewAdminAuthMiddleware(sessions SessionVerifier, logger logger.Interface) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAdmin rejects requests without a valid admin session cookie.
func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionCookie(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		claims, err := m.sessions.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify session token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminSession, claims)

		c.Next()
	}
}

// AttachSession puts a valid admin session on the context without rejecting
// anonymous requests. Public handlers use it to unlock admin-only views of
// otherwise public data.
func (m *AdminAuthMiddleware) AttachSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionCookie(c)
		if token != "" {
			if claims, err := m.sessions.Verify(token); err == nil {
				c.Set(constants.ContextKeyAdminSession, claims)
			}
		}

		c.Next()
	}
}
