package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/layer-3/vouch/core"
	"github.com/layer-3/vouch/service"
)

const contextUserKey = "authUser"

// AuthMiddleware creates middleware that resolves the bearer session
// token into the current user record.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")

		// Check if the Authorization header is present and in correct format
		if len(auth) < 8 || auth[:7] != "Bearer " {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header"})
			return
		}

		// Extract the token
		token := auth[7:]

		user, err := authService.ResolveSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, core.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			}
			return
		}

		c.Set(contextUserKey, user)

		c.Next()
	}
}

// CORSMiddleware allows cross-origin calls to the API
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// currentUser returns the user record set by AuthMiddleware
func currentUser(c *gin.Context) (*core.User, bool) {
	v, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*core.User)
	return user, ok
}
