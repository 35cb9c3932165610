package middleware

import (
	"net/http"
	"strings"

	"patient-record-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token from the Authorization header.
// A missing token is a 401; a token that fails validation is a 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// The credential is whatever follows the scheme. A header without a
		// credential part counts as missing; a present credential that fails
		// validation is invalid, whatever its scheme.
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if authHeader == "" || len(parts) < 2 || parts[1] == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Token missing")
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusForbidden, "Invalid token")
			c.Abort()
			return
		}

		// Inject claims into context
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}
