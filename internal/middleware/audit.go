package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/services"
)

// Audit records every mutating admin request to the system log after the
// handler runs. Reads are not logged.
func Audit(module string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		adminID := GetAdminID(c)
		var adminRef *uint
		if adminID != 0 {
			adminRef = &adminID
		}

		action := c.Request.Method + " " + c.FullPath()
		status := c.Writer.Status()

		if status >= 400 {
			services.LogWarning(module, action, "request failed",
				adminRef, c.ClientIP(), c.Request.UserAgent(),
				map[string]interface{}{"status": status})
			return
		}

		services.LogInfo(module, action, "request completed",
			adminRef, c.ClientIP(), c.Request.UserAgent(),
			map[string]interface{}{"status": status})
	}
}
