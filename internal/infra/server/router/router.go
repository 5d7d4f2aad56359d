// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vendagame/backend/internal/domain/entity"
	"github.com/vendagame/backend/internal/integration/entrypoint/controller"
	"github.com/vendagame/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	saleController      *controller.SaleController
	goalController      *controller.GoalController
	rankingController   *controller.RankingController
	dashboardController *controller.DashboardController
	profileController   *controller.ProfileController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	saleController *controller.SaleController,
	goalController *controller.GoalController,
	rankingController *controller.RankingController,
	dashboardController *controller.DashboardController,
	profileController *controller.ProfileController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		saleController:      saleController,
		goalController:      goalController,
		rankingController:   rankingController,
		dashboardController: dashboardController,
		profileController:   profileController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	manager := middleware.RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)

	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Sale ledger routes (require authentication)
		if r.saleController != nil && r.authMiddleware != nil {
			sales := v1.Group("/sales")
			sales.Use(r.authMiddleware.Authenticate())
			{
				sales.GET("", r.saleController.List)
				sales.POST("", r.saleController.Create)
				sales.PATCH("/:id/status", manager, r.saleController.UpdateStatus)
				sales.DELETE("/:id", r.saleController.Delete)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("/me", r.goalController.GetIndividual)
				goals.PUT("/individual", manager, r.goalController.SetIndividual)
				goals.GET("/individual", r.goalController.ListIndividual)
				goals.GET("/individual/:seller_id", r.goalController.GetIndividual)
				goals.DELETE("/individual/:id", manager, r.goalController.DeleteIndividual)
				goals.PUT("/consolidated", manager, r.goalController.SetConsolidated)
				goals.GET("/consolidated", r.goalController.GetConsolidated)
				goals.DELETE("/consolidated/:id", manager, r.goalController.DeleteConsolidated)

				if r.rankingController != nil {
					goals.GET("/consolidated/:id/contributors", r.rankingController.GetGoalContributors)
				}
			}
		}

		// Ranking routes (require authentication)
		if r.rankingController != nil && r.authMiddleware != nil {
			rankings := v1.Group("/ranking")
			rankings.Use(r.authMiddleware.Authenticate())
			{
				rankings.GET("", r.rankingController.GetRanking)
				rankings.GET("/podium", r.rankingController.GetPodium)
			}
		}

		// Dashboard routes (require authentication, manager-only)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate(), manager)
			{
				dashboard.GET("/team-health", r.dashboardController.GetTeamHealth)
				dashboard.GET("/monthly-series", r.dashboardController.GetMonthlySeries)
			}
		}

		// Team and profile routes (require authentication)
		if r.profileController != nil && r.authMiddleware != nil {
			team := v1.Group("/team")
			team.Use(r.authMiddleware.Authenticate())
			{
				team.GET("", r.profileController.ListTeam)
				team.POST("", manager, r.profileController.CreateSeller)
			}

			profiles := v1.Group("/profiles")
			profiles.Use(r.authMiddleware.Authenticate())
			{
				profiles.GET("/me", r.profileController.Me)
				profiles.PATCH("/:id", r.profileController.UpdateProfile)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
