package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rsfinance/rsfinance-service/internal/models"
	"github.com/rsfinance/rsfinance-service/internal/wizard"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ApplicationService struct {
	db    *gorm.DB
	queue TaskQueue
}

func NewApplicationService(db *gorm.DB, queue TaskQueue) *ApplicationService {
	return &ApplicationService{db: db, queue: queue}
}

// allowedTransitions is the explicit status transition table. A status only
// advances; terminal states never change again.
var allowedTransitions = map[string][]string{
	models.StatusPending:     {models.StatusUnderReview, models.StatusApproved, models.StatusRejected},
	models.StatusUnderReview: {models.StatusApproved, models.StatusRejected},
	models.StatusApproved:    {},
	models.StatusRejected:    {},
}

// TransitionAllowed reports whether an application may move from one status
// to another.
func TransitionAllowed(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// GenerateApplicationID builds the human-readable application identifier:
// the RSF prefix, the submission time in milliseconds and a short random
// suffix so two submissions in the same millisecond cannot collide.
func GenerateApplicationID(at time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("RSF%d%s", at.UnixMilli(), suffix)
}

// Submit validates a completed wizard form, persists it with status PENDING
// and a freshly assigned application identifier, and queues the confirmation
// notifications. Field errors are returned as a validation AppError; the
// record is either fully created or not created at all.
func (s *ApplicationService) Submit(form *wizard.Form) (*models.LoanApplication, error) {
	fieldErrs := wizard.ValidateAll(form)
	app, convErrs := s.fromForm(form)
	for k, v := range convErrs {
		if _, dup := fieldErrs[k]; !dup {
			fieldErrs[k] = v
		}
	}
	if len(fieldErrs) > 0 {
		return nil, response.NewValidation(fieldErrs)
	}

	app.ApplicationID = GenerateApplicationID(time.Now())
	app.Status = models.StatusPending

	if err := s.db.Create(app).Error; err != nil {
		return nil, err
	}

	if s.queue != nil {
		if err := s.queue.Enqueue(&NotificationTask{
			Kind:          NotifyApplicationSubmitted,
			ApplicationID: app.ID,
		}); err != nil {
			// Notification failure must not undo the submission.
			LogWarning("application", "notify", "failed to queue submission notification: "+err.Error(), nil, "", "", nil)
		}
	}

	return app, nil
}

// fromForm converts submitted string fields into a typed record. Returns
// field-keyed messages for values that fail to parse.
func (s *ApplicationService) fromForm(f *wizard.Form) (*models.LoanApplication, map[string]string) {
	errs := make(map[string]string)

	parseDecimal := func(key, value string) decimal.Decimal {
		if value == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(value)
		if err != nil || d.IsNegative() {
			errs[key] = "must be a non-negative number"
			return decimal.Zero
		}
		return d
	}
	parseInt := func(key, value string) int {
		if value == "" {
			return 0
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			errs[key] = "must be a non-negative whole number"
			return 0
		}
		return n
	}

	app := &models.LoanApplication{
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		Email:         f.Email,
		Phone:         f.Phone,
		DateOfBirth:   f.DateOfBirth,
		Gender:        f.Gender,
		MaritalStatus: f.MaritalStatus,
		FatherName:    f.FatherName,
		MotherName:    f.MotherName,

		CurrentAddress:        f.CurrentAddress,
		PermanentAddress:      f.PermanentAddress,
		City:                  f.City,
		State:                 f.State,
		Pincode:               f.Pincode,
		ResidenceType:         f.ResidenceType,
		YearsAtCurrentAddress: parseInt("yearsAtCurrentAddress", f.YearsAtCurrentAddress),

		EmploymentType:   f.EmploymentType,
		CompanyName:      f.CompanyName,
		Designation:      f.Designation,
		WorkExperience:   parseInt("workExperience", f.WorkExperience),
		MonthlyIncome:    parseDecimal("monthlyIncome", f.MonthlyIncome),
		AdditionalIncome: parseDecimal("additionalIncome", f.AdditionalIncome),
		OfficialEmail:    f.OfficialEmail,
		OfficeAddress:    f.OfficeAddress,

		LoanType:        f.LoanType,
		LoanAmount:      parseDecimal("loanAmount", f.LoanAmount),
		LoanPurpose:     f.LoanPurpose,
		PreferredTenure: parseInt("preferredTenure", f.PreferredTenure),
		ExistingLoans:   f.ExistingLoans,
		BankAccount:     f.BankAccount,
		IFSCCode:        f.IFSCCode,

		IdentityProof:  f.IdentityProof,
		AddressProof:   f.AddressProof,
		IncomeProof:    f.IncomeProof,
		BankStatements: f.BankStatements,
		Photograph:     f.Photograph,
	}
	return app, errs
}

type ApplicationListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status"`
	Search   string `form:"search"`
}

type ApplicationListResponse struct {
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
	Items    []models.LoanApplication `json:"items"`
}

// List returns a page of applications, newest submission first. Status is an
// exact (case-insensitive) match against the enum; search is a
// case-insensitive substring match over first name, last name and
// application identifier.
func (s *ApplicationService) List(req *ApplicationListRequest) (*ApplicationListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	query := s.db.Model(&models.LoanApplication{})

	if req.Status != "" && !strings.EqualFold(req.Status, "all") {
		status := strings.ToUpper(req.Status)
		if !models.ValidStatus(status) {
			return nil, response.NewBadRequest("unknown status filter: " + req.Status)
		}
		query = query.Where("status = ?", status)
	}

	if req.Search != "" {
		term := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(application_id) LIKE ?",
			term, term, term,
		)
	}

	var total int64
	query.Count(&total)

	var items []models.LoanApplication
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return &ApplicationListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}

// GetByID returns one application by database id.
func (s *ApplicationService) GetByID(id uint) (*models.LoanApplication, error) {
	var app models.LoanApplication
	if err := s.db.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("application not found")
		}
		return nil, err
	}
	return &app, nil
}

// GetByApplicationID returns one application by its public identifier.
func (s *ApplicationService) GetByApplicationID(applicationID string) (*models.LoanApplication, error) {
	var app models.LoanApplication
	if err := s.db.Where("application_id = ?", applicationID).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("application not found")
		}
		return nil, err
	}
	return &app, nil
}

type UpdateStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Comments string `json:"comments"`
}

// UpdateStatus moves an application to a new status on behalf of a reviewer.
// The transition table is enforced here, not in the UI: disallowed moves get
// a typed transition error. Reviewer identity and timestamp are recorded
// alongside the new status.
func (s *ApplicationService) UpdateStatus(id uint, req *UpdateStatusRequest, reviewedBy string) (*models.LoanApplication, error) {
	newStatus := strings.ToUpper(req.Status)
	if !models.ValidStatus(newStatus) {
		return nil, response.NewBadRequest("unknown status: " + req.Status)
	}

	var app models.LoanApplication
	if err := s.db.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("application not found")
		}
		return nil, err
	}

	if !TransitionAllowed(app.Status, newStatus) {
		return nil, response.NewTransition(
			fmt.Sprintf("status cannot change from %s to %s", app.Status, newStatus))
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":          newStatus,
		"reviewed_by":     reviewedBy,
		"reviewed_at":     now,
		"review_comments": req.Comments,
	}
	if err := s.db.Model(&app).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.First(&app, id).Error; err != nil {
		return nil, err
	}

	if s.queue != nil {
		if err := s.queue.Enqueue(&NotificationTask{
			Kind:          NotifyStatusChanged,
			ApplicationID: app.ID,
		}); err != nil {
			LogWarning("application", "notify", "failed to queue status notification: "+err.Error(), nil, "", "", nil)
		}
	}

	return &app, nil
}

// Delete removes an application permanently.
func (s *ApplicationService) Delete(id uint) error {
	result := s.db.Delete(&models.LoanApplication{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("application not found")
	}
	return nil
}
