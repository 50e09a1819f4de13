package services

import (
	"github.com/robfig/cron/v3"
	"github.com/rsfinance/rsfinance-service/pkg/logger"
	"gorm.io/gorm"
)

// DailyDigestService mails the back office a summary of application
// activity on a cron schedule kept in system_configs.
type DailyDigestService struct {
	db               *gorm.DB
	dashboardService *DashboardService
	emailService     *EmailService
	cronScheduler    *cron.Cron
	currentEntryID   cron.EntryID
}

func NewDailyDigestService(db *gorm.DB, dashboardService *DashboardService, emailService *EmailService) *DailyDigestService {
	return &DailyDigestService{
		db:               db,
		dashboardService: dashboardService,
		emailService:     emailService,
	}
}

func (s *DailyDigestService) StartScheduler() {
	s.cronScheduler = cron.New()

	s.updateSchedule()

	s.cronScheduler.Start()
	logger.Infof("[DailyDigest] Scheduler started")
}

func (s *DailyDigestService) StopScheduler() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

func (s *DailyDigestService) updateSchedule() {
	if s.currentEntryID != 0 {
		s.cronScheduler.Remove(s.currentEntryID)
	}

	cronExpr := s.getSchedule()

	entryID, err := s.cronScheduler.AddFunc(cronExpr, func() {
		if err := s.SendDigest(); err != nil {
			logger.Errorf("[DailyDigest] Failed to send digest: %v", err)
		}
	})
	if err != nil {
		logger.Errorf("[DailyDigest] Invalid cron expression %q: %v", cronExpr, err)
		return
	}

	s.currentEntryID = entryID
	logger.Infof("[DailyDigest] Scheduled with cron expression %q", cronExpr)
}

func (s *DailyDigestService) getSchedule() string {
	return NewSystemConfigService(s.db).GetWithDefault("digest_schedule", "0 9 * * *")
}

// SendDigest collects today's application stats and mails them out.
func (s *DailyDigestService) SendDigest() error {
	stats, err := s.dashboardService.GetApplicationStats()
	if err != nil {
		return err
	}

	if err := s.emailService.SendDailyDigest(stats); err != nil {
		return err
	}

	logger.Infof("[DailyDigest] Digest sent (today=%d, total=%d)", stats.Today, stats.Total)
	return nil
}
