// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vendagame/backend/config"
	"github.com/vendagame/backend/internal/application/usecase/auth"
	"github.com/vendagame/backend/internal/application/usecase/dashboard"
	"github.com/vendagame/backend/internal/application/usecase/goal"
	"github.com/vendagame/backend/internal/application/usecase/profile"
	"github.com/vendagame/backend/internal/application/usecase/ranking"
	"github.com/vendagame/backend/internal/application/usecase/sale"
	"github.com/vendagame/backend/internal/infra/server/router"
	"github.com/vendagame/backend/internal/integration/adapters"
	"github.com/vendagame/backend/internal/integration/cache"
	"github.com/vendagame/backend/internal/integration/email"
	"github.com/vendagame/backend/internal/integration/email/templates"
	"github.com/vendagame/backend/internal/integration/entrypoint/controller"
	"github.com/vendagame/backend/internal/integration/entrypoint/middleware"
	"github.com/vendagame/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	companyRepo := persistence.NewCompanyRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	individualGoalRepo := persistence.NewIndividualGoalRepository(db)
	consolidatedGoalRepo := persistence.NewConsolidatedGoalRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	aggregateCache := cache.NewAggregateCache(redisClient, cfg.Cache.AggregateTTL)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create auth use cases
	registerCompanyUseCase := auth.NewRegisterCompanyUseCase(companyRepo, profileRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(profileRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(profileRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create sale use cases
	createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo, profileRepo, aggregateCache)
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo, profileRepo)
	updateSaleStatusUseCase := sale.NewUpdateSaleStatusUseCase(saleRepo, profileRepo, individualGoalRepo, emailService, aggregateCache)
	deleteSaleUseCase := sale.NewDeleteSaleUseCase(saleRepo, aggregateCache)

	// Create goal use cases
	setIndividualGoalUseCase := goal.NewSetIndividualGoalUseCase(individualGoalRepo, profileRepo, aggregateCache)
	listIndividualGoalsUseCase := goal.NewListIndividualGoalsUseCase(individualGoalRepo, profileRepo, saleRepo)
	getIndividualGoalUseCase := goal.NewGetIndividualGoalUseCase(individualGoalRepo, profileRepo, saleRepo)
	deleteIndividualGoalUseCase := goal.NewDeleteIndividualGoalUseCase(individualGoalRepo, aggregateCache)
	setConsolidatedGoalUseCase := goal.NewSetConsolidatedGoalUseCase(consolidatedGoalRepo, aggregateCache)
	getConsolidatedGoalUseCase := goal.NewGetConsolidatedGoalUseCase(consolidatedGoalRepo, saleRepo, aggregateCache)
	deleteConsolidatedGoalUseCase := goal.NewDeleteConsolidatedGoalUseCase(consolidatedGoalRepo, aggregateCache)

	// Create ranking use cases
	getRankingUseCase := ranking.NewGetRankingUseCase(profileRepo, saleRepo, individualGoalRepo, consolidatedGoalRepo, aggregateCache)
	getPodiumUseCase := ranking.NewGetPodiumUseCase(getRankingUseCase)
	getGoalContributorsUseCase := ranking.NewGetGoalContributorsUseCase(consolidatedGoalRepo, profileRepo, saleRepo)

	// Create dashboard use cases
	getTeamHealthUseCase := dashboard.NewGetTeamHealthUseCase(profileRepo, saleRepo, individualGoalRepo, consolidatedGoalRepo, aggregateCache)
	getMonthlySeriesUseCase := dashboard.NewGetMonthlySeriesUseCase(saleRepo, consolidatedGoalRepo)

	// Create profile use cases
	createSellerUseCase := profile.NewCreateSellerUseCase(profileRepo, passwordService)
	listTeamUseCase := profile.NewListTeamUseCase(profileRepo)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo)
	getMeUseCase := profile.NewGetMeUseCase(profileRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerCompanyUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	saleController := controller.NewSaleController(
		createSaleUseCase,
		listSalesUseCase,
		updateSaleStatusUseCase,
		deleteSaleUseCase,
	)

	goalController := controller.NewGoalController(
		setIndividualGoalUseCase,
		listIndividualGoalsUseCase,
		getIndividualGoalUseCase,
		deleteIndividualGoalUseCase,
		setConsolidatedGoalUseCase,
		getConsolidatedGoalUseCase,
		deleteConsolidatedGoalUseCase,
	)

	rankingController := controller.NewRankingController(
		getRankingUseCase,
		getPodiumUseCase,
		getGoalContributorsUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getTeamHealthUseCase,
		getMonthlySeriesUseCase,
	)

	profileController := controller.NewProfileController(
		createSellerUseCase,
		listTeamUseCase,
		updateProfileUseCase,
		getMeUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		saleController,
		goalController,
		rankingController,
		dashboardController,
		profileController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
