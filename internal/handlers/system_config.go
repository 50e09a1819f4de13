package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/services"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

type SystemConfigHandler struct {
	configService *services.SystemConfigService
}

func NewSystemConfigHandler(db *gorm.DB) *SystemConfigHandler {
	return &SystemConfigHandler{
		configService: services.NewSystemConfigService(db),
	}
}

// ListGroup returns all settings in one config group, such as "email"
// GET /api/settings/:group
func (h *SystemConfigHandler) ListGroup(c *gin.Context) {
	configs, err := h.configService.ListGroup(c.Param("group"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, configs)
}

// Update sets the value of one seeded setting
// PUT /api/settings
func (h *SystemConfigHandler) Update(c *gin.Context) {
	var req services.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.configService.UpdateExisting(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"key": req.Key, "value": req.Value})
}
