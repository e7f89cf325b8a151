package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/audit"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/cache"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/handlers"
	infraRepo "github.com/SUPERMITA777/reset-fire-sub001/internal/infra/repository"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/middleware"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/payments"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/storage"
	ucAppointment "github.com/SUPERMITA777/reset-fire-sub001/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	availabilityCache := cache.New(cfg)
	imageStore := storage.NewImageStore(cfg)

	mpClient, err := payments.New(cfg.MPAccessToken)
	if err != nil {
		log.Printf("payments disabled: %v", err)
		mpClient, _ = payments.New("")
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (TURNOS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		scheduleRepo,
		availabilityCache,
		auditDispatcher,
		cfg,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		scheduleRepo,
		availabilityCache,
		auditDispatcher,
		cfg,
	)

	setStatusUC := ucAppointment.NewSetAppointmentStatus(
		scheduleRepo,
		availabilityCache,
		auditDispatcher,
		cfg,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		scheduleRepo,
		availabilityCache,
		auditDispatcher,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(scheduleRepo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(scheduleRepo, cfg)

	availabilityUC := ucAppointment.NewGetAvailability(
		scheduleRepo,
		availabilityCache,
		cfg,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db)
	treatmentHandler := handlers.NewTreatmentHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db, cfg, availabilityCache)
	productHandler := handlers.NewProductHandler(db)
	photoHandler := handlers.NewPhotoHandler(db, imageStore)
	depositHandler := handlers.NewDepositHandler(db, mpClient)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		createAppointmentUC,
		updateAppointmentUC,
		setStatusUC,
		deleteAppointmentUC,
		listByDateUC,
		listByMonthUC,
		availabilityUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.Me)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/clientes", clientHandler.List)
			secured.POST("/clientes", clientHandler.Create)
			secured.GET("/clientes/:id", clientHandler.Get)
			secured.PUT("/clientes/:id", clientHandler.Update)
			secured.DELETE("/clientes/:id", clientHandler.Delete)

			// ------------------------------
			// TRATAMIENTOS
			// ------------------------------
			secured.GET("/tratamientos", treatmentHandler.List)
			secured.POST("/tratamientos", treatmentHandler.Create)
			secured.GET("/tratamientos/:id", treatmentHandler.Get)
			secured.PUT("/tratamientos/:id", treatmentHandler.Update)
			secured.DELETE("/tratamientos/:id", treatmentHandler.Delete)

			secured.GET("/tratamientos/:id/subtratamientos", treatmentHandler.ListSubTreatments)
			secured.POST("/tratamientos/:id/subtratamientos", treatmentHandler.CreateSubTreatment)
			secured.PUT("/subtratamientos/:id", treatmentHandler.UpdateSubTreatment)
			secured.DELETE("/subtratamientos/:id", treatmentHandler.DeleteSubTreatment)

			// ------------------------------
			// DISPONIBILIDAD
			// ------------------------------
			secured.GET("/tratamientos/:id/disponibilidad", availabilityHandler.List)
			secured.POST("/tratamientos/:id/disponibilidad", availabilityHandler.Create)
			secured.PUT("/disponibilidad/:id", availabilityHandler.Update)
			secured.DELETE("/disponibilidad/:id", availabilityHandler.Delete)

			// ------------------------------
			// TURNOS
			// ------------------------------
			secured.GET("/citas", appointmentHandler.List)
			secured.POST("/citas", appointmentHandler.Create)
			secured.GET("/citas/disponibilidad", appointmentHandler.Availability)
			secured.PUT("/citas/:id", appointmentHandler.Update)
			secured.PATCH("/citas/:id/estado", appointmentHandler.SetStatus)
			secured.DELETE("/citas/:id", appointmentHandler.Delete)
			secured.POST("/citas/:id/sena", depositHandler.CreateDeposit)

			// ------------------------------
			// PRODUCTOS
			// ------------------------------
			secured.GET("/productos", productHandler.List)
			secured.POST("/productos", productHandler.Create)
			secured.GET("/productos/:id", productHandler.Get)
			secured.PUT("/productos/:id", productHandler.Update)
			secured.DELETE("/productos/:id", productHandler.Delete)

			// ------------------------------
			// FOTOS
			// ------------------------------
			secured.POST("/tratamientos/:id/foto", photoHandler.UploadTreatmentPhoto)
			secured.POST("/productos/:id/foto", photoHandler.UploadProductPhoto)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
