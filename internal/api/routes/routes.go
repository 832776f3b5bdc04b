package routes

import (
	"fmt"
	"net/http"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/api/middleware"
	"crm-backend/internal/auth"
	"crm-backend/internal/config"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}

	validate := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	assigneeRepo := repository.NewCampaignAssigneeRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	assigneeLeadRepo := repository.NewAssigneeLeadRepository(db)

	// Import engine collaborators
	registrar := service.NewAssigneeRegistrar(assigneeRepo, campaignRepo, userRepo)
	duplicates := service.NewDuplicateChecker(leadRepo)
	planner := service.NewDistributionPlanner()

	// Services
	leadImportService := service.NewLeadImportService(
		leadRepo, assigneeLeadRepo, campaignRepo, assigneeRepo,
		registrar, duplicates, planner, validate, cfg.ImportMaxLeads,
	)
	leadService := service.NewLeadService(leadRepo, assigneeLeadRepo, assigneeRepo, campaignRepo, registrar, duplicates, validate)
	campaignAssigneeService := service.NewCampaignAssigneeService(assigneeRepo, campaignRepo, userRepo, validate)
	assigneeLeadService := service.NewAssigneeLeadService(assigneeLeadRepo, leadRepo, validate)

	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	leadImportHandler := handlers.NewLeadImportHandler(leadImportService, cfg.ImportMaxUploadMB<<20)
	leadHandler := handlers.NewLeadHandler(leadService)
	campaignAssigneeHandler := handlers.NewCampaignAssigneeHandler(campaignAssigneeService)
	assigneeLeadHandler := handlers.NewAssigneeLeadHandler(assigneeLeadService)

	registerHealthRoutes(router, healthHandler)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		leads := v1.Group("/leads")
		{
			leads.POST("/bulk", leadImportHandler.BulkImport)
			leads.POST("/bulk/upload", leadImportHandler.BulkUpload)
			leads.POST("/bulk-assign", leadHandler.BulkAssign)
			leads.POST("", leadHandler.CreateLead)
			leads.GET("", leadHandler.ListLeads)
			leads.GET("/assignee/:assignment_id", leadHandler.GetLeadsByAssignment)
			leads.GET("/:id", leadHandler.GetLead)
			leads.PUT("/:id", leadHandler.UpdateLead)
			leads.DELETE("/:id", leadHandler.DeleteLead)
			leads.PUT("/:id/assign/:user_id", leadHandler.AssignLead)
			leads.PUT("/:id/unassign", leadHandler.UnassignLead)
		}

		campaigns := v1.Group("/campaigns")
		{
			campaigns.GET("/:id/leads/unassigned", leadHandler.GetUnassignedLeads)
		}

		campaignAssignees := v1.Group("/campaign-assignees")
		{
			campaignAssignees.POST("", campaignAssigneeHandler.AssignUser)
			campaignAssignees.GET("/campaign/:campaign_id", campaignAssigneeHandler.GetByCampaign)
			campaignAssignees.GET("/user/:user_id", campaignAssigneeHandler.GetByUser)
			campaignAssignees.PUT("/:id", campaignAssigneeHandler.Update)
			campaignAssignees.DELETE("/campaign/:campaign_id/user/:user_id", campaignAssigneeHandler.Remove)
		}

		assigneeLeads := v1.Group("/assignee-leads")
		{
			assigneeLeads.GET("/campaign/:campaign_id", assigneeLeadHandler.GetByCampaign)
			assigneeLeads.GET("/assignee/:user_id", assigneeLeadHandler.GetByAssignee)
			assigneeLeads.GET("/lead/:lead_id", assigneeLeadHandler.GetByLead)
			assigneeLeads.GET("/lead/:lead_id/history", assigneeLeadHandler.GetHistory)
			assigneeLeads.PUT("/:id/status", assigneeLeadHandler.UpdateStatus)
			assigneeLeads.GET("/stats/stages", assigneeLeadHandler.GetStageStats)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	registerHealthRoutes(router, handlers.NewHealthHandler(db, Version))
	return router
}

func registerHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
}
