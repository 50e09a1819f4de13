package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/services"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

type OrganizationHandler struct {
	organizationService *services.OrganizationService
}

func NewOrganizationHandler(db *gorm.DB) *OrganizationHandler {
	return &OrganizationHandler{
		organizationService: services.NewOrganizationService(db),
	}
}

// Get returns the business profile, falling back to the built-in default
// GET /api/public/organization
func (h *OrganizationHandler) Get(c *gin.Context) {
	info, err := h.organizationService.Get()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, info)
}

// Update upserts the singleton profile row
// PUT /api/organization
func (h *OrganizationHandler) Update(c *gin.Context) {
	var req services.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	info, err := h.organizationService.Update(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, info)
}
