package routes

import (
	"clinic-portal-backend/internal/api/handlers"
	"clinic-portal-backend/internal/api/middleware"
	"clinic-portal-backend/internal/cache"
	"clinic-portal-backend/internal/config"
	"clinic-portal-backend/internal/repository"
	"clinic-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, availabilityCache *cache.AvailabilityCache) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	specialtyRepo := repository.NewSpecialtyRepository(db)
	contractRepo := repository.NewContractRepository(db)
	templateRepo := repository.NewScheduleTemplateRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	auditRepo := repository.NewAuditEventRepository(db)

	// Initialize services
	policy := cfg.Policy()
	catalog := service.NewAvailabilityCatalog(templateRepo, contractRepo)
	conflictChecker := service.NewConflictChecker(appointmentRepo, policy.BufferMinutes)
	bookingValidator := service.NewAppointmentValidator(catalog, appointmentRepo, conflictChecker, policy)
	auditService := service.NewAuditService(auditRepo)

	doctorService := service.NewDoctorService(doctorRepo, specialtyRepo, validator, availabilityCache)
	patientService := service.NewPatientService(patientRepo, validator)
	specialtyService := service.NewSpecialtyService(specialtyRepo, validator)
	contractService := service.NewContractService(contractRepo, doctorRepo, validator, availabilityCache)
	templateService := service.NewScheduleTemplateService(templateRepo, doctorRepo, validator, availabilityCache)
	appointmentService := service.NewAppointmentService(appointmentRepo, doctorRepo, patientRepo, bookingValidator, auditService, availabilityCache)
	slotService := service.NewSlotGenerator(catalog, appointmentRepo, availabilityCache, policy.BufferMinutes)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	doctorHandler := handlers.NewDoctorHandler(doctorService, slotService)
	patientHandler := handlers.NewPatientHandler(patientService)
	specialtyHandler := handlers.NewSpecialtyHandler(specialtyService)
	contractHandler := handlers.NewContractHandler(contractService)
	templateHandler := handlers.NewScheduleTemplateHandler(templateService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication outside development
	v1 := router.Group("/api/v1")

	if !cfg.IsDevelopment() {
		v1.Use(middleware.RequireAuth(cfg.JWTSecret))
	}

	{
		// Specialty routes
		specialties := v1.Group("/specialties")
		{
			specialties.GET("", specialtyHandler.ListSpecialties)
			specialties.POST("", specialtyHandler.CreateSpecialty)
			specialties.GET("/:id", specialtyHandler.GetSpecialty)
			specialties.PUT("/:id", specialtyHandler.UpdateSpecialty)
			specialties.DELETE("/:id", specialtyHandler.DeleteSpecialty)
		}

		// Doctor routes
		doctors := v1.Group("/doctors")
		{
			doctors.GET("", doctorHandler.ListDoctors)
			doctors.POST("", doctorHandler.CreateDoctor)
			doctors.GET("/:id", doctorHandler.GetDoctor)
			doctors.PUT("/:id", doctorHandler.UpdateDoctor)
			doctors.DELETE("/:id", doctorHandler.DeleteDoctor)
			doctors.POST("/:id/deactivate", doctorHandler.DeactivateDoctor)
			doctors.GET("/:id/slots", doctorHandler.GetDoctorSlots)
			doctors.GET("/:id/contracts", contractHandler.GetContractsByDoctor)
			doctors.GET("/:id/schedule-templates", templateHandler.GetTemplatesByDoctor)
			doctors.GET("/:id/appointments", appointmentHandler.GetAppointmentsByDoctor)
		}

		// Patient routes
		patients := v1.Group("/patients")
		{
			patients.GET("", patientHandler.ListPatients)
			patients.POST("", patientHandler.CreatePatient)
			patients.GET("/:id", patientHandler.GetPatient)
			patients.PUT("/:id", patientHandler.UpdatePatient)
			patients.DELETE("/:id", patientHandler.DeletePatient)
			patients.GET("/:id/appointments", appointmentHandler.GetAppointmentsByPatient)
		}

		// Contract routes
		contracts := v1.Group("/contracts")
		{
			contracts.POST("", contractHandler.CreateContract)
			contracts.GET("/:id", contractHandler.GetContract)
			contracts.PUT("/:id", contractHandler.UpdateContract)
			contracts.DELETE("/:id", contractHandler.DeleteContract)
		}

		// Schedule template routes
		templates := v1.Group("/schedule-templates")
		{
			templates.POST("", templateHandler.CreateScheduleTemplate)
			templates.GET("/:id", templateHandler.GetScheduleTemplate)
			templates.PUT("/:id", templateHandler.UpdateScheduleTemplate)
			templates.DELETE("/:id", templateHandler.DeleteScheduleTemplate)
		}

		// Appointment routes
		appointments := v1.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.ListAppointments)
			appointments.POST("", appointmentHandler.CreateAppointment)
			appointments.POST("/validate", appointmentHandler.ValidateAppointment)
			appointments.GET("/:id", appointmentHandler.GetAppointment)
			appointments.PUT("/:id/reschedule", appointmentHandler.RescheduleAppointment)
			appointments.POST("/:id/confirm", appointmentHandler.ConfirmAppointment)
			appointments.POST("/:id/complete", appointmentHandler.CompleteAppointment)
			appointments.POST("/:id/cancel", appointmentHandler.CancelAppointment)
		}

		// Audit trail routes
		audit := v1.Group("/audit-events")
		{
			audit.GET("", auditHandler.ListAuditEvents)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
