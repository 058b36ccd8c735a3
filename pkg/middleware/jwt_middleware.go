package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
	"wanderguard/pkg/utils"
)

// SessionMiddleware requires a bearer session token and puts the session
// subject into the context. Plan routes use it to scope the saved collection.
func SessionMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateSessionToken(tokenString)
		if err != nil || claims.Subject == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session token")
			c.Abort()
			return
		}

		c.Set("session_id", claims.Subject)
		c.Next()
	}
}
