package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/services"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

type LoanTypeHandler struct {
	loanTypeService *services.LoanTypeService
}

func NewLoanTypeHandler(db *gorm.DB) *LoanTypeHandler {
	return &LoanTypeHandler{
		loanTypeService: services.NewLoanTypeService(db),
	}
}

// ListActive returns the catalog entries visible on the public site
// GET /api/public/loan-types
func (h *LoanTypeHandler) ListActive(c *gin.Context) {
	types, err := h.loanTypeService.ListActive()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, types)
}

// ListAll returns every catalog entry for the back office
// GET /api/loan-types
func (h *LoanTypeHandler) ListAll(c *gin.Context) {
	types, err := h.loanTypeService.ListAll()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, types)
}

// GetByID returns one catalog entry
// GET /api/public/loan-types/:id
func (h *LoanTypeHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid loan type id")
		return
	}

	lt, err := h.loanTypeService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, lt)
}

// Create adds a catalog entry
// POST /api/loan-types
func (h *LoanTypeHandler) Create(c *gin.Context) {
	var req services.CreateLoanTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	lt, err := h.loanTypeService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, lt)
}

// Update edits a catalog entry
// PUT /api/loan-types/:id
func (h *LoanTypeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid loan type id")
		return
	}

	var req services.UpdateLoanTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	lt, err := h.loanTypeService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, lt)
}

// Delete removes a catalog entry
// DELETE /api/loan-types/:id
func (h *LoanTypeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid loan type id")
		return
	}

	if err := h.loanTypeService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "loan type deleted"})
}

// ToggleActive flips a catalog entry's visibility
// POST /api/loan-types/:id/toggle
func (h *LoanTypeHandler) ToggleActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid loan type id")
		return
	}

	lt, err := h.loanTypeService.ToggleActive(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, lt)
}
