package main

import (
	"github.com/rsfinance/rsfinance-service/internal/config"
	"github.com/rsfinance/rsfinance-service/internal/models"
	"github.com/rsfinance/rsfinance-service/internal/services"
	"github.com/rsfinance/rsfinance-service/internal/utils"
	"github.com/rsfinance/rsfinance-service/pkg/logger"
	"gorm.io/gorm"
)

// app holds everything wired at startup.
type app struct {
	db     *gorm.DB
	queue  services.TaskQueue
	worker *services.Worker
	digest *services.DailyDigestService
}

func bootstrap(cfg *config.Config) (*app, error) {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		return nil, err
	}
	if err := models.AutoMigrate(); err != nil {
		return nil, err
	}
	if err := models.SeedDefaultData(); err != nil {
		logger.Warnf("Failed to seed default data: %v", err)
	}

	db := models.GetDB()

	services.InitSystemLogger(db)
	services.StartLogCleanupScheduler(db)

	authService := services.NewAuthService(db, &cfg.JWT)
	if err := authService.SeedAdmin(&cfg.Admin); err != nil {
		logger.Warnf("Failed to seed admin account: %v", err)
	}

	// Notification pipeline: asynq-backed when Redis is enabled, otherwise a
	// synchronous in-process fallback. The email service is the processor
	// either way.
	emailService := services.NewEmailService(db)
	queue := services.InitTaskQueue(cfg)

	var worker *services.Worker
	if queue.IsAsync() {
		worker = services.NewWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(emailService.ProcessNotification)
			if err := worker.Start(); err != nil {
				logger.Warnf("Failed to start notification worker: %v", err)
			}
		}
	} else if sq, ok := queue.(*services.SyncQueue); ok {
		sq.SetProcessor(emailService.ProcessNotification)
	}

	digest := services.NewDailyDigestService(db, services.NewDashboardService(db), emailService)
	digest.StartScheduler()

	return &app{
		db:     db,
		queue:  queue,
		worker: worker,
		digest: digest,
	}, nil
}

func (a *app) shutdown() {
	a.digest.StopScheduler()
	if a.worker != nil {
		a.worker.Stop()
	}
	if err := a.queue.Close(); err != nil {
		logger.Warnf("Failed to close task queue: %v", err)
	}
}
