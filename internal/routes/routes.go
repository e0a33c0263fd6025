package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/avtoservice/workshop-scheduler/internal/audit"
	"github.com/avtoservice/workshop-scheduler/internal/config"
	"github.com/avtoservice/workshop-scheduler/internal/handlers"
	infraRepo "github.com/avtoservice/workshop-scheduler/internal/infra/repository"
	"github.com/avtoservice/workshop-scheduler/internal/mailer"
	"github.com/avtoservice/workshop-scheduler/internal/metrics"
	"github.com/avtoservice/workshop-scheduler/internal/middleware"
	ucSchedule "github.com/avtoservice/workshop-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var mail mailer.Mailer
	if cfg.SMTPConfigured() {
		mail = mailer.NewSMTPMailer(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPFrom,
			cfg.SMTPUser,
			cfg.SMTPPassword,
		)
	} else {
		mail = mailer.NewLogMailer(log)
	}

	metrics.Register()

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	reconcileMonthUC := ucSchedule.NewReconcileMonth(scheduleRepo)

	bookSlotUC := ucSchedule.NewBookSlot(
		scheduleRepo,
		mail,
		auditDispatcher,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, serviceHandler)

	publicHandler := handlers.NewPublicHandler(
		db,
		scheduleRepo,
		reconcileMonthUC,
		bookSlotUC,
	)

	// ======================================================
	// METRICS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/services/:id/calendar", publicHandler.Calendar)
			publicAPI.GET("/services/:id/days/:dayID/slots", publicHandler.ListSlots)
			publicAPI.POST("/services/:id/days/:dayID/slots/:slotID/book", publicHandler.BookSlot)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API (owners)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.GET("/me/services/:id", serviceHandler.Get)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/services/:id/audit-logs", auditLogsHandler.List)
		}
	}
}
