package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/config"
	"github.com/rsfinance/rsfinance-service/internal/handlers"
	"github.com/rsfinance/rsfinance-service/internal/middleware"
)

func registerRoutes(r *gin.Engine, cfg *config.Config, a *app) {
	r.Use(middleware.CORS())

	authHandler := handlers.NewAuthHandler(a.db, &cfg.JWT)
	applicationHandler := handlers.NewApplicationHandler(a.db, a.queue)
	loanTypeHandler := handlers.NewLoanTypeHandler(a.db)
	contactHandler := handlers.NewContactHandler(a.db, a.queue)
	organizationHandler := handlers.NewOrganizationHandler(a.db)
	dashboardHandler := handlers.NewDashboardHandler(a.db)
	systemLogHandler := handlers.NewSystemLogHandler(a.db)
	systemConfigHandler := handlers.NewSystemConfigHandler(a.db)
	healthHandler := handlers.NewHealthHandler()

	// Public endpoints for the marketing site. Unauthenticated, so they sit
	// behind a per-IP rate limit.
	public := r.Group("/api/public")
	public.Use(middleware.RateLimit(10, 20))
	{
		public.GET("/loan-types", loanTypeHandler.ListActive)
		public.GET("/loan-types/:id", loanTypeHandler.GetByID)
		public.POST("/applications", applicationHandler.Submit)
		public.POST("/applications/validate", applicationHandler.ValidateStep)
		public.GET("/applications/:applicationId", applicationHandler.StatusLookup)
		public.GET("/organization", organizationHandler.Get)
		public.POST("/contact", contactHandler.Submit)
		public.GET("/health", healthHandler.CheckHealth)
	}

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)

		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/me", authHandler.Me)
			protected.POST("/auth/change-password", authHandler.ChangePassword)
			protected.GET("/profile", authHandler.Me)
			protected.PUT("/profile", authHandler.UpdateProfile)

			protected.GET("/dashboard/stats", dashboardHandler.Stats)

			applications := protected.Group("/applications")
			applications.Use(middleware.Audit("application"))
			{
				applications.GET("", applicationHandler.List)
				applications.GET("/stats", applicationHandler.Stats)
				applications.GET("/:id", applicationHandler.GetByID)
				applications.PUT("/:id/status", applicationHandler.UpdateStatus)
				applications.DELETE("/:id", applicationHandler.Delete)
			}

			loanTypes := protected.Group("/loan-types")
			loanTypes.Use(middleware.Audit("loan_type"))
			{
				loanTypes.GET("", loanTypeHandler.ListAll)
				loanTypes.POST("", loanTypeHandler.Create)
				loanTypes.PUT("/:id", loanTypeHandler.Update)
				loanTypes.DELETE("/:id", loanTypeHandler.Delete)
				loanTypes.POST("/:id/toggle", loanTypeHandler.ToggleActive)
			}

			messages := protected.Group("/contact-messages")
			messages.Use(middleware.Audit("contact"))
			{
				messages.GET("", contactHandler.List)
				messages.GET("/unread-count", contactHandler.UnreadCount)
				messages.PUT("/:id/read", contactHandler.SetRead)
				messages.DELETE("/:id", contactHandler.Delete)
			}

			protected.PUT("/organization", middleware.Audit("organization"), organizationHandler.Update)

			protected.GET("/system-logs", systemLogHandler.List)
			protected.GET("/system-logs/retention", systemLogHandler.GetRetention)
			protected.PUT("/system-logs/retention", systemLogHandler.SetRetention)
			protected.POST("/system-logs/cleanup", systemLogHandler.Cleanup)

			protected.GET("/settings/:group", systemConfigHandler.ListGroup)
			protected.PUT("/settings", systemConfigHandler.Update)
		}
	}
}
