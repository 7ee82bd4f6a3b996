package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barbeariamb/admin-api/internal/audit"
	"github.com/barbeariamb/admin-api/internal/config"
	"github.com/barbeariamb/admin-api/internal/handlers"
	infraRepo "github.com/barbeariamb/admin-api/internal/infra/repository"
	"github.com/barbeariamb/admin-api/internal/mail"
	"github.com/barbeariamb/admin-api/internal/middleware"
	"github.com/barbeariamb/admin-api/internal/settings"
	"github.com/barbeariamb/admin-api/internal/timezone"
	ucAppointment "github.com/barbeariamb/admin-api/internal/usecase/appointment"
	ucDiscount "github.com/barbeariamb/admin-api/internal/usecase/discount"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	mailer mail.Mailer,
	logger *zap.Logger,
	cfg *config.Config,
) {

	now := timezone.NowFunc(cfg.ShopTimezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	discountRepo := infraRepo.NewDiscountGormRepository(db)

	settingsService := settings.NewService(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	// ======================================================
	// USE CASES — DISCOUNTS
	// ======================================================
	mintDiscountUC := ucDiscount.NewCreateBirthdayDiscount(discountRepo, now)
	validateDiscountUC := ucDiscount.NewValidateDiscountCode(discountRepo, now)

	birthdaySweepUC := ucDiscount.NewBirthdaySweep(
		discountRepo,
		mintDiscountUC,
		settingsService,
		mailer,
		auditDispatcher,
		logger,
		now,
	)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		validateDiscountUC,
		auditDispatcher,
		now,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		now,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		now,
	)

	listTodayUC := ucAppointment.NewListTodayAppointments(appointmentRepo, now)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db, cfg.ShopTimezone)
	barberHandler := handlers.NewBarberHandler(db, cfg.ShopTimezone)
	serviceHandler := handlers.NewServiceHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		listTodayUC,
	)

	discountHandler := handlers.NewDiscountHandler(validateDiscountUC, birthdaySweepUC)

	// ======================================================
	// ROUTES
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login",
		middleware.LoginRateLimit(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow),
		authHandler.Login,
	)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/clients", clientHandler.List)
		secured.POST("/clients", clientHandler.Create)
		secured.PUT("/clients/:id", clientHandler.Update)
		secured.DELETE("/clients/:id", clientHandler.Delete)
		secured.GET("/clients/:id/history", clientHandler.History)

		secured.GET("/barbers", barberHandler.List)
		secured.POST("/barbers", barberHandler.Create)
		secured.PUT("/barbers/:id", barberHandler.Update)
		secured.DELETE("/barbers/:id", barberHandler.Delete)
		secured.GET("/barbers/:id/agenda", barberHandler.Agenda)

		secured.GET("/services", serviceHandler.List)
		secured.GET("/services/:id", serviceHandler.Get)
		secured.POST("/services", serviceHandler.Create)
		secured.PUT("/services/:id", serviceHandler.Update)
		secured.DELETE("/services/:id", serviceHandler.Delete)

		secured.POST("/appointments", appointmentHandler.Create)
		secured.PUT("/appointments/:id", appointmentHandler.Update)
		secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		secured.GET("/appointments/today", appointmentHandler.ListToday)

		secured.GET("/discounts/validate", discountHandler.Validate)
		secured.POST("/discounts/send-birthday", discountHandler.SendBirthday)

		secured.GET("/settings/birthday-message", settingsHandler.GetBirthdayMessage)
		secured.PUT("/settings/birthday-message", settingsHandler.UpdateBirthdayMessage)

		secured.GET("/dashboard", dashboardHandler.Get)
	}
}
