package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"gobarber-api/internal/cache"
	"gobarber-api/internal/config"
	"gobarber-api/internal/handlers"
	infraRepo "gobarber-api/internal/infra/repository"
	"gobarber-api/internal/media"
	"gobarber-api/internal/middleware"
	"gobarber-api/internal/notification"
	ucAppointment "gobarber-api/internal/usecase/appointment"
	ucUser "gobarber-api/internal/usecase/user"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdc *cache.Cache,
	mongoClient *mongo.Client,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	notificationStore := notification.NewStore(mongoClient, cfg.MongoDB)
	notifier := notification.NewDispatcher(notificationStore)

	avatarStore := media.NewAvatarStore(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	invalidator := ucUser.NewProfileCacheInvalidator(appointmentRepo, rdc)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		userRepo,
		rdc,
		notifier,
	)

	monthAvailabilityUC := ucAppointment.NewGetMonthAvailability(appointmentRepo)
	dayAvailabilityUC := ucAppointment.NewGetDayAvailability(appointmentRepo)
	listProviderDayUC := ucAppointment.NewListProviderDayAppointments(appointmentRepo, rdc)
	listUpcomingUC := ucAppointment.NewListUpcomingAppointments(appointmentRepo, rdc)

	listProvidersUC := ucUser.NewListProviders(userRepo, rdc)
	updateProfileUC := ucUser.NewUpdateProfile(userRepo, invalidator)
	updatePasswordUC := ucUser.NewUpdatePassword(userRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, rdc, cfg)

	userHandler := handlers.NewUserHandler(
		userRepo,
		updateProfileUC,
		updatePasswordUC,
		listUpcomingUC,
		avatarStore,
		invalidator,
	)

	providerHandler := handlers.NewProviderHandler(
		listProvidersUC,
		monthAvailabilityUC,
		dayAvailabilityUC,
		listProviderDayUC,
		notificationStore,
	)

	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/appointments", userHandler.ListAppointments)
			secured.PUT("/me", userHandler.UpdateProfile)
			secured.PUT("/me/password", userHandler.UpdatePassword)
			secured.PUT("/me/avatar", userHandler.UploadAvatar)

			secured.GET("/providers", providerHandler.List)
			secured.GET("/providers/me", providerHandler.ListMyDayAppointments)
			secured.GET("/providers/month-availability", providerHandler.MonthAvailability)
			secured.GET("/providers/day-availability", providerHandler.DayAvailability)
			secured.GET("/providers/notifications", providerHandler.ListNotifications)
			secured.PUT("/providers/notifications", providerHandler.ReadNotification)

			secured.POST("/appointments", appointmentHandler.Create)
		}
	}
}
