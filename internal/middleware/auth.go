package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fransit/francheese-website1/internal/service"
)

// Context keys set by RequireAuth.
const (
	ctxUserID  = "userID"
	ctxIsAdmin = "isAdmin"
)

// RequireAuth extracts the bearer token, verifies it, and puts the identity
// claims on the gin context. A missing token is 401; a token that fails
// verification (bad signature, malformed, expired) is 400.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
			token = strings.TrimPrefix(ah, "Bearer ")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied"})
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ctxIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or "" outside RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
