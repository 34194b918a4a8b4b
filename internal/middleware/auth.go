package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtsvc "desaadmin/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// SessionValidator reports whether the session behind a token is still live.
// Implemented by the auth service; any error means access is denied.
type SessionValidator interface {
	ValidateSession(ctx context.Context, sessionID string) error
}

// Auth gates admin routes on a bearer token with a live session. A failed
// session lookup is treated the same as no session at all — fail closed.
func Auth(jwt *jwtsvc.Service, sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		if err := sessions.ValidateSession(c.Request.Context(), claims.SessionID); err != nil {
			abortUnauthorized(c, "Session is no longer valid")
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("session_id", claims.SessionID)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
