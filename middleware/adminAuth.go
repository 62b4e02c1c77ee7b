package middleware

import (
	"net/http"
	"strings"

	"sokohub/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware verifies the Bearer ID token and requires the "admin"
// custom claim. Tag mutations are administrator-only.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if isAdmin, ok := token.Claims["admin"].(bool); !ok || !isAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("userID", token.UID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
