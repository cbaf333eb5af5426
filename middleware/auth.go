package middleware

import (
	"strings"

	"github.com/Omoefe-bazunu/hhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIdentityMiddleware resolves the caller's identity from a Firebase ID
// token when one is presented. Requests without a valid token proceed as
// guests with an empty userID; read-state tracking then degrades to
// "nothing read" and never writes.
func UserIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := ""

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			idToken := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), idToken)
			if err != nil {
				zap.L().Warn("Rejected ID token, continuing as guest", zap.Error(err))
			} else {
				userID = token.UID
			}
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// UserID returns the identity set by UserIdentityMiddleware ("" for guests).
func UserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
