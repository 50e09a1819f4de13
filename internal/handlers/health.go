package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/models"
	"github.com/rsfinance/rsfinance-service/internal/services"
)

// HealthHandler reports subsystem status for probes and uptime checks.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of all subsystems.
// GET /api/public/health
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	// Database check
	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	// Queue mode
	taskQueue := services.GetTaskQueue()
	queueMode := "sync"
	if taskQueue != nil && taskQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	// Applications waiting on a decision
	var openCount int64
	models.GetDB().Model(&models.LoanApplication{}).
		Where("status IN ?", []string{models.StatusPending, models.StatusUnderReview}).
		Count(&openCount)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "rsfinance-service",
		"components": gin.H{
			"database":          dbStatus,
			"queue_mode":        queueMode,
			"open_applications": openCount,
		},
	})
}
