package middleware

import (
	"github.com/gin-gonic/gin"

	"vendia/internal/core/security"
)

// UserContext propagates the authenticated user ID into the security
// context used by the storage layer for created_by/updated_by stamps.
// Must run after Auth.
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetString("user_id"); userID != "" {
			ctx := security.WithUserID(c.Request.Context(), userID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
