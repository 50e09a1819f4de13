package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/middleware"
	"github.com/rsfinance/rsfinance-service/internal/services"
	"github.com/rsfinance/rsfinance-service/internal/wizard"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	dashboardService   *services.DashboardService
	workdayService     *services.WorkdayService
}

func NewApplicationHandler(db *gorm.DB, queue services.TaskQueue) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: services.NewApplicationService(db, queue),
		dashboardService:   services.NewDashboardService(db),
		workdayService:     services.NewWorkdayService(),
	}
}

// Submit accepts a completed wizard form from the public site
// POST /api/public/applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var form wizard.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	app, err := h.applicationService.Submit(&form)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"application_id": app.ApplicationID,
		"status":         app.Status,
		"submitted_at":   app.CreatedAt,
	})
}

type validateStepRequest struct {
	Step int         `json:"step" binding:"required,min=1,max=5"`
	Form wizard.Form `json:"form"`
}

// ValidateStep runs one wizard step's validation for the client
// POST /api/public/applications/validate
func (h *ApplicationHandler) ValidateStep(c *gin.Context) {
	var req validateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	errs := wizard.ValidateStep(&req.Form, req.Step)
	response.Success(c, gin.H{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

// statusLookup is the limited public projection of an application.
type statusLookup struct {
	ApplicationID      string     `json:"application_id"`
	Status             string     `json:"status"`
	LoanType           string     `json:"loan_type"`
	SubmittedAt        time.Time  `json:"submitted_at"`
	ExpectedDecisionBy time.Time  `json:"expected_decision_by"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
}

// StatusLookup lets an applicant check their application by its identifier
// GET /api/public/applications/:applicationId
func (h *ApplicationHandler) StatusLookup(c *gin.Context) {
	app, err := h.applicationService.GetByApplicationID(c.Param("applicationId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, statusLookup{
		ApplicationID:      app.ApplicationID,
		Status:             app.Status,
		LoanType:           app.LoanType,
		SubmittedAt:        app.CreatedAt,
		ExpectedDecisionBy: h.workdayService.ExpectedDecisionDate(app.CreatedAt),
		ReviewedAt:         app.ReviewedAt,
	})
}

// List returns paginated applications for the back office
// GET /api/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	var req services.ApplicationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.applicationService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// GetByID returns one application with every field
// GET /api/applications/:id
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid application id")
		return
	}

	app, err := h.applicationService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, app)
}

// UpdateStatus moves an application through the review pipeline
// PUT /api/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid application id")
		return
	}

	var req services.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	app, err := h.applicationService.UpdateStatus(uint(id), &req, middleware.GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, app)
}

// Delete removes an application
// DELETE /api/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid application id")
		return
	}

	if err := h.applicationService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "application deleted"})
}

// Stats returns aggregate application counts
// GET /api/applications/stats
func (h *ApplicationHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetApplicationStats()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, stats)
}
