package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/utils"
	"github.com/rsfinance/rsfinance-service/pkg/response"
)

const (
	ContextAdminID  = "admin_id"
	ContextUsername = "username"
)

// AuthRequired checks for a valid JWT access token and puts the signed-in
// admin's identity on the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "authorization header required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextUsername, claims.Username)

		c.Next()
	}
}

// GetAdminID gets the signed-in admin's ID from context.
func GetAdminID(c *gin.Context) uint {
	if id, exists := c.Get(ContextAdminID); exists {
		return id.(uint)
	}
	return 0
}

// GetUsername gets the signed-in admin's username from context.
func GetUsername(c *gin.Context) string {
	if username, exists := c.Get(ContextUsername); exists {
		return username.(string)
	}
	return ""
}
