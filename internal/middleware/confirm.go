package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireConfirmation blocks destructive requests that do not carry an
// explicit confirm=true parameter. The client shows its own confirmation
// prompt and only sets the parameter once the user accepts.
func RequireConfirmation() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("confirm") != "true" {
			c.AbortWithStatusJSON(http.StatusPreconditionRequired, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CONFIRMATION_REQUIRED",
					"message": "Destructive action requires confirm=true",
				},
			})
			return
		}
		c.Next()
	}
}
