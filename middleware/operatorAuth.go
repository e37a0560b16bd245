package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"mawid/config"

	"github.com/gin-gonic/gin"
)

// OperatorAuthMiddleware guards the operator endpoints with the static token
// from configuration. When no token is configured the endpoints are closed.
func OperatorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		configured := config.AppConfig.OperatorToken
		if configured == "" || subtle.ConstantTimeCompare([]byte(tokenString), []byte(configured)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized operator access"})
			return
		}

		c.Set("isOperator", true)
		c.Next()
	}
}
