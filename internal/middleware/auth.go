package middleware

import (
	"net/http"
	"strings"

	"go-event-booking/pkg/token"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserID is the gin context key holding the authenticated user id.
	ContextUserID = "userID"
	// ContextUserEmail is the gin context key holding the authenticated email.
	ContextUserEmail = "userEmail"
)

// Auth validates the Bearer token and attaches the claims to the request
// context. A missing token is 401; a malformed, expired or badly signed one
// is 403.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := token.Verify(jwtSecret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

// UserID returns the authenticated user id attached by Auth.
func UserID(c *gin.Context) int {
	return c.GetInt(ContextUserID)
}
