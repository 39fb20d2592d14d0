package middlewares

import (
	"log/slog"
	"net/http"

	jwthandling "github.com/aidbridge/aidbridge-backend/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

// IsAdminUser requires a previously validated token in the request context
// and rejects callers without admin privilege. An authenticated non-admin
// caller gets 403, not 401.
func IsAdminUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenValue, ok := c.Get("validatedToken")
		if !ok {
			slog.Warn("IsAdminUser: validatedToken not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "validatedToken not found in context"})
			return
		}
		parsedToken := tokenValue.(*jwthandling.UserClaims)

		if !parsedToken.IsAdmin {
			slog.Warn("IsAdminUser Middleware: non admin user tried to access admin endpoint", slog.String("userID", parsedToken.Subject))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
	}
}
