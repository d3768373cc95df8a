package routes

import (
	"net/http"

	"team-access-backend/internal/api/handlers"
	"team-access-backend/internal/api/middleware"
	"team-access-backend/internal/config"
	"team-access-backend/internal/logger"
	"team-access-backend/internal/repository"
	"team-access-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	validator := service.NewValidator()

	// Repositories
	teamRepo := repository.NewTeamRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	// Services
	teamService := service.NewTeamService(teamRepo, validator)
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	membershipService := service.NewMembershipService(membershipRepo, employeeRepo, teamRepo, validator)
	dashboardService := service.NewDashboardService(teamService, membershipService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	teamHandler := handlers.NewTeamHandler(teamService, membershipService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, membershipService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	lookupHandler := handlers.NewLookupHandler(employeeService, membershipService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/api/v1")
	{
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.GET("/:id/employees", teamHandler.GetTeamEmployees)
		}

		employees := v1.Group("/employees")
		{
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/search", employeeHandler.SearchEmployees)
			employees.PUT("/teams", employeeHandler.AssignTeams)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.GET("/:id/team-ids", employeeHandler.GetEmployeeTeamIDs)
		}

		v1.GET("/dashboard", dashboardHandler.GetDashboard)
	}

	// Form-encoded lookups used by the page scripts
	router.POST("/autocomplete", lookupHandler.Autocomplete)
	router.POST("/get_existing_team_ids", lookupHandler.GetExistingTeamIDs)
	router.POST("/get_assigned_employees", lookupHandler.GetAssignedEmployees)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(string(logger.RequestIDKey)),
		})
	})

	return router
}
