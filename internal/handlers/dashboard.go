package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/services"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: services.NewDashboardService(db),
	}
}

// Stats returns the back-office dashboard aggregates
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	resp, err := h.dashboardService.GetStats()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}
