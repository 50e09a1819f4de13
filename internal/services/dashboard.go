package services

import (
	"time"

	"github.com/rsfinance/rsfinance-service/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// ApplicationStats are aggregate counts over the loan_applications table,
// recomputed on every call. No incremental counters are maintained.
type ApplicationStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	UnderReview int64 `json:"under_review"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
	Today       int64 `json:"today"`
	ThisWeek    int64 `json:"this_week"`
	ThisMonth   int64 `json:"this_month"`
}

type DashboardResponse struct {
	Applications   ApplicationStats `json:"applications"`
	ActiveProducts int64            `json:"active_products"`
	UnreadMessages int64            `json:"unread_messages"`
}

// GetApplicationStats counts applications by status and by submission window.
func (s *DashboardService) GetApplicationStats() (*ApplicationStats, error) {
	var stats ApplicationStats

	apps := func() *gorm.DB { return s.db.Model(&models.LoanApplication{}) }

	if err := apps().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	apps().Where("status = ?", models.StatusPending).Count(&stats.Pending)
	apps().Where("status = ?", models.StatusUnderReview).Count(&stats.UnderReview)
	apps().Where("status = ?", models.StatusApproved).Count(&stats.Approved)
	apps().Where("status = ?", models.StatusRejected).Count(&stats.Rejected)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int((now.Weekday()+6)%7)) // Monday
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	apps().Where("created_at >= ?", startOfDay).Count(&stats.Today)
	apps().Where("created_at >= ?", startOfWeek).Count(&stats.ThisWeek)
	apps().Where("created_at >= ?", startOfMonth).Count(&stats.ThisMonth)

	return &stats, nil
}

// GetStats assembles the back-office dashboard: application counts plus the
// active catalog size and unread inbox count for the header widgets.
func (s *DashboardService) GetStats() (*DashboardResponse, error) {
	appStats, err := s.GetApplicationStats()
	if err != nil {
		return nil, err
	}

	resp := &DashboardResponse{Applications: *appStats}
	s.db.Model(&models.LoanType{}).Where("is_active = ?", true).Count(&resp.ActiveProducts)
	s.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&resp.UnreadMessages)

	return resp, nil
}
