package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hairlookapp/hairlook-api/internal/audit"
	"github.com/hairlookapp/hairlook-api/internal/config"
	"github.com/hairlookapp/hairlook-api/internal/handlers"
	infraRepo "github.com/hairlookapp/hairlook-api/internal/infra/repository"
	"github.com/hairlookapp/hairlook-api/internal/middleware"
	ucAppointment "github.com/hairlookapp/hairlook-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	hairstyleHandler := handlers.NewHairstyleHandler(db, catalogRepo, auditDispatcher)
	tryOnHandler := handlers.NewTryOnHandler(db, auditDispatcher)
	savedHandler := handlers.NewSavedHandler(db, catalogRepo, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
	)

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
		// PUBLIC READS (catalog)
		// ------------------------------
		api.GET("/categories", categoryHandler.List)
		api.GET("/categories/:id", categoryHandler.Retrieve)
		api.GET("/hairstyles", hairstyleHandler.List)
		api.GET("/hairstyles/:id", hairstyleHandler.Retrieve)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.Retrieve)
			secured.PUT("/users/:id", userHandler.Update)
			secured.PATCH("/users/:id", userHandler.Update)

			secured.GET("/profiles", profileHandler.List)
			secured.POST("/profiles", profileHandler.Create)
			secured.GET("/profiles/:id", profileHandler.Retrieve)
			secured.PUT("/profiles/:id", profileHandler.Update)
			secured.PATCH("/profiles/:id", profileHandler.Update)
			secured.DELETE("/profiles/:id", profileHandler.Delete)

			// catalog writes need an authenticated caller; reads stay open
			secured.POST("/hairstyles", hairstyleHandler.Create)
			secured.PUT("/hairstyles/:id", hairstyleHandler.Update)
			secured.PATCH("/hairstyles/:id", hairstyleHandler.Update)
			secured.DELETE("/hairstyles/:id", hairstyleHandler.Delete)
			secured.POST("/hairstyles/:id/like", hairstyleHandler.Like)

			secured.GET("/tryon-sessions", tryOnHandler.List)
			secured.POST("/tryon-sessions", tryOnHandler.Create)
			secured.GET("/tryon-sessions/:id", tryOnHandler.Retrieve)
			secured.PUT("/tryon-sessions/:id", tryOnHandler.Update)
			secured.PATCH("/tryon-sessions/:id", tryOnHandler.Update)
			secured.DELETE("/tryon-sessions/:id", tryOnHandler.Delete)

			secured.GET("/saved-hairstyles", savedHandler.List)
			secured.POST("/saved-hairstyles", savedHandler.Create)
			secured.GET("/saved-hairstyles/:id", savedHandler.Retrieve)
			secured.PUT("/saved-hairstyles/:id", savedHandler.Update)
			secured.PATCH("/saved-hairstyles/:id", savedHandler.Update)
			secured.DELETE("/saved-hairstyles/:id", savedHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Retrieve)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
		}
	}
}
