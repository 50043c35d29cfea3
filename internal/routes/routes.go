package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NovaLinkServices/salon-scheduler/internal/audit"
	"github.com/NovaLinkServices/salon-scheduler/internal/cache"
	"github.com/NovaLinkServices/salon-scheduler/internal/config"
	"github.com/NovaLinkServices/salon-scheduler/internal/handlers"
	infraRepo "github.com/NovaLinkServices/salon-scheduler/internal/infra/repository"
	"github.com/NovaLinkServices/salon-scheduler/internal/logger"
	"github.com/NovaLinkServices/salon-scheduler/internal/media"
	"github.com/NovaLinkServices/salon-scheduler/internal/middleware"
	"github.com/NovaLinkServices/salon-scheduler/internal/notify"
	"github.com/NovaLinkServices/salon-scheduler/internal/payments"
	ucScheduling "github.com/NovaLinkServices/salon-scheduler/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	log := logger.Get()

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)

	notifier := notify.New(db)
	notifyDispatcher := notify.NewDispatcher(notifier, log)

	// Redis is optional; a nil cache turns slot caching off.
	slotCache, err := cache.New(cfg)
	if err != nil {
		log.Warn("slot cache disabled", zap.Error(err))
		slotCache = nil
	}

	uploader := media.NewUploader(cfg)

	var paymentsClient *payments.Client
	if cfg.MPAccessToken != "" {
		paymentsClient, err = payments.New(cfg.MPAccessToken)
		if err != nil {
			log.Warn("payments disabled", zap.Error(err))
			paymentsClient = nil
		}
	}

	// ======================================================
	// USE CASES (SCHEDULING)
	// ======================================================
	createAppointmentUC := ucScheduling.NewCreateAppointment(
		schedulingRepo,
		notifyDispatcher,
		auditLogger,
		slotCache,
	)

	rescheduleAppointmentUC := ucScheduling.NewRescheduleAppointment(
		schedulingRepo,
		notifyDispatcher,
		auditLogger,
		slotCache,
	)

	cancelAppointmentUC := ucScheduling.NewCancelAppointment(
		schedulingRepo,
		notifyDispatcher,
		auditLogger,
		slotCache,
	)

	deleteAppointmentUC := ucScheduling.NewDeleteAppointment(
		schedulingRepo,
		notifyDispatcher,
		auditLogger,
		slotCache,
	)

	listAppointmentsByDateUC := ucScheduling.NewListAppointmentsByDate(
		schedulingRepo,
	)

	listAppointmentsByMonthUC := ucScheduling.NewListAppointmentsByMonth(
		schedulingRepo,
	)

	checkAvailabilityUC := ucScheduling.NewCheckAvailability(schedulingRepo)
	findConflictsUC := ucScheduling.NewFindConflicts(schedulingRepo)
	generateSlotsUC := ucScheduling.NewGenerateSlots(schedulingRepo, slotCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, uploader)
	clientHandler := handlers.NewClientHandler(db)
	staffHandler := handlers.NewStaffHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		schedulingRepo,
		paymentsClient,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		checkAvailabilityUC,
		findConflictsUC,
		generateSlotsUC,
		schedulingRepo,
	)

	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		createAppointmentUC,
		checkAvailabilityUC,
		generateSlotsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC BOOKING
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/slots", publicHandler.Slots)
			publicAPI.GET("/:slug/availability", publicHandler.CheckAvailability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)
			secured.POST("/me/services/:id/image", serviceHandler.UploadImage)

			secured.GET("/me/staff", staffHandler.List)
			secured.POST("/me/staff", middleware.RequireOwner(), staffHandler.Create)

			// ------------------------------
			// AVAILABILITY
			// ------------------------------
			secured.POST("/me/availability/check", availabilityHandler.Check)
			secured.GET("/me/availability/conflicts", availabilityHandler.Conflicts)
			secured.GET("/me/availability/slots", availabilityHandler.Slots)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)
			secured.GET("/me/appointments/:id/payment-link", appointmentHandler.PaymentLink)

			secured.GET("/me/notifications", notificationHandler.List)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
