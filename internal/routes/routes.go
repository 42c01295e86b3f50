package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/kezya-clinic/internal/audit"
	"github.com/BruksfildServices01/kezya-clinic/internal/config"
	"github.com/BruksfildServices01/kezya-clinic/internal/handlers"
	"github.com/BruksfildServices01/kezya-clinic/internal/infra/idgen"
	infraRepo "github.com/BruksfildServices01/kezya-clinic/internal/infra/repository"
	"github.com/BruksfildServices01/kezya-clinic/internal/logger"
	"github.com/BruksfildServices01/kezya-clinic/internal/middleware"
	"github.com/BruksfildServices01/kezya-clinic/internal/observability/metrics"
	"github.com/BruksfildServices01/kezya-clinic/internal/payments"
	"github.com/BruksfildServices01/kezya-clinic/internal/settings"
	"github.com/BruksfildServices01/kezya-clinic/internal/storage"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/kezya-clinic/internal/usecase/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/usecase/message"
	"github.com/BruksfildServices01/kezya-clinic/internal/validators"
)

// Infra reúne os clientes externos montados no main. Campos nil
// desligam o recurso correspondente.
type Infra struct {
	Log      *logger.Logger
	Redis    *redis.Client
	Composer message.Composer
	Store    *storage.Store
	Payments *payments.LinkService
	Metrics  *metrics.ClinicMetrics
	Gatherer prometheus.Gatherer
	Audit    *audit.Dispatcher
	Emails   *validators.EmailDomain
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	ids := idgen.New(cfg.MeetLinkPrefix)
	clock := timezone.ClockIn(cfg.PracticeTimezone)

	settingsService := settings.NewService(
		appointmentRepo,
		infra.Redis,
		infra.Log.WithComponent("settings"),
	)

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		settingsService,
		clock,
	)

	bookingUC := ucAppointment.NewRegisterBooking(
		appointmentRepo,
		settingsService,
		ids,
		ids,
		infra.Audit,
		infra.Metrics,
		infra.Log.WithComponent("booking"),
	)

	manualUC := ucAppointment.NewCreateManualAppointment(
		appointmentRepo,
		settingsService,
		ids,
		ids,
		infra.Audit,
		infra.Metrics,
	)

	startUC := ucAppointment.NewStartTelehealth(
		appointmentRepo,
		ids,
		clock,
		infra.Audit,
		infra.Metrics,
	)

	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, clock, infra.Audit)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, clock, infra.Audit)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		availabilityUC,
		bookingUC,
		infra.Composer,
		infra.Log.WithComponent("public"),
	)

	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret, clock)
	settingsHandler := handlers.NewSettingsHandler(
		settingsService,
		infra.Audit,
		infra.Log.WithComponent("settings"),
	)

	appointmentHandler := handlers.NewAppointmentHandler(handlers.AppointmentDeps{
		Create:   manualUC,
		Start:    startUC,
		Complete: completeUC,
		Cancel:   cancelUC,
		List:     listUC,
		Repo:     appointmentRepo,
		Payments: infra.Payments,
		Now:      clock,
		Log:      infra.Log.WithComponent("appointments"),
	})

	clientHandler := handlers.NewClientHandler(db, ids, infra.Emails, infra.Audit)
	retentionHandler := handlers.NewRetentionHandler(
		db,
		infra.Composer,
		clock,
		infra.Log.WithComponent("retention"),
	)
	financeHandler := handlers.NewFinanceHandler(db, ids, clock, infra.Audit)
	kanbanHandler := handlers.NewKanbanHandler(db, ids)
	reportHandler := handlers.NewReportHandler(handlers.ReportDeps{
		DB:    db,
		Store: infra.Store,
		IDs:   ids,
		Now:   clock,
		Audit: infra.Audit,
		Log:   infra.Log.WithComponent("reports"),
	})
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OPERAÇÃO
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if infra.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(infra.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/slots", publicHandler.Slots)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("", authHandler.Me)

			secured.GET("/settings", settingsHandler.Get)
			secured.PUT("/settings", settingsHandler.Update)

			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/week", appointmentHandler.Week)
			secured.PATCH("/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/:id/payment-link", appointmentHandler.PaymentLink)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)

			secured.GET("/retention", retentionHandler.List)
			secured.POST("/retention/:clientId/message", retentionHandler.Message)

			secured.GET("/finances", financeHandler.List)
			secured.POST("/finances", financeHandler.Create)
			secured.GET("/finances/summary", financeHandler.Summary)

			secured.GET("/kanban", kanbanHandler.List)
			secured.POST("/kanban", kanbanHandler.Create)
			secured.PATCH("/kanban/:id", kanbanHandler.Update)
			secured.DELETE("/kanban/:id", kanbanHandler.Delete)

			secured.GET("/reports", reportHandler.List)
			secured.POST("/reports", reportHandler.Create)
			secured.POST("/reports/:id/attachment", reportHandler.UploadAttachment)
			secured.GET("/reports/:id/attachment", reportHandler.DownloadAttachment)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
