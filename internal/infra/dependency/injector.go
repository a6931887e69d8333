// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/grocery-tracker/backend/config"
	"github.com/grocery-tracker/backend/internal/application/adapter"
	"github.com/grocery-tracker/backend/internal/application/usecase/auth"
	"github.com/grocery-tracker/backend/internal/application/usecase/budget"
	"github.com/grocery-tracker/backend/internal/application/usecase/forecast"
	"github.com/grocery-tracker/backend/internal/application/usecase/item"
	"github.com/grocery-tracker/backend/internal/application/usecase/purchase"
	"github.com/grocery-tracker/backend/internal/application/usecase/scan"
	"github.com/grocery-tracker/backend/internal/infra/server/router"
	"github.com/grocery-tracker/backend/internal/integration/adapters"
	"github.com/grocery-tracker/backend/internal/integration/email"
	"github.com/grocery-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/grocery-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/grocery-tracker/backend/internal/integration/persistence"
	"github.com/grocery-tracker/backend/internal/integration/reminder"
)

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	DB             *gorm.DB
	Router         *router.Router
	ReminderWorker *reminder.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	householdRepo := persistence.NewHouseholdRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	itemRepo := persistence.NewGroceryItemRepository(db)
	purchaseRepo := persistence.NewPurchaseRepository(db)
	priceRepo := persistence.NewPriceHistoryRepository(db)

	// Create adapters/services
	passphraseService := adapters.NewPassphraseService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	lookupService := adapters.NewOpenFoodFactsService(cfg.Lookup.ProductBaseURL, cfg.Lookup.PricesBaseURL)
	predictionService := newPredictionService(cfg)
	scheduler := reminder.NewScheduler(redisClient)

	// Create auth use cases
	registerUseCase := auth.NewRegisterHouseholdUseCase(householdRepo, passphraseService, tokenService)
	loginUseCase := auth.NewLoginHouseholdUseCase(householdRepo, passphraseService, tokenService)
	refreshUseCase := auth.NewRefreshTokenUseCase(tokenService)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	budgetSummaryUseCase := budget.NewGetBudgetSummaryUseCase(budgetRepo, purchaseRepo)

	// Create item use cases
	createItemUseCase := item.NewCreateItemUseCase(itemRepo)
	listItemsUseCase := item.NewListItemsUseCase(itemRepo)
	searchItemsUseCase := item.NewSearchItemsUseCase(itemRepo)
	priceHistoryUseCase := item.NewGetPriceHistoryUseCase(itemRepo, priceRepo)

	// Create purchase use cases
	recordPurchaseUseCase := purchase.NewRecordPurchaseUseCase(purchaseRepo, itemRepo, priceRepo)
	listPurchasesUseCase := purchase.NewListPurchasesUseCase(purchaseRepo)

	// Create forecast and scan use cases
	forecastUseCase := forecast.NewForecastReplenishmentUseCase(itemRepo, purchaseRepo, predictionService, scheduler)
	scanUseCase := scan.NewScanBarcodeUseCase(lookupService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshUseCase)
	budgetController := controller.NewBudgetController(createBudgetUseCase, listBudgetsUseCase, budgetSummaryUseCase)
	itemController := controller.NewItemController(createItemUseCase, listItemsUseCase, searchItemsUseCase, priceHistoryUseCase)
	purchaseController := controller.NewPurchaseController(recordPurchaseUseCase, listPurchasesUseCase)
	forecastController := controller.NewForecastController(forecastUseCase)
	scanController := controller.NewScanController(scanUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	var scanRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
		scanRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
		scanRateLimiter = middleware.NewRateLimiterWithConfig(30, 1*time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		budgetController,
		itemController,
		purchaseController,
		forecastController,
		scanController,
		loginRateLimiter,
		scanRateLimiter,
		authMiddleware,
	)

	// Create the reminder delivery worker when delivery is configured
	var worker *reminder.Worker
	if cfg.Reminder.WorkerEnabled && cfg.Reminder.ResendAPIKey != "" && cfg.Reminder.ToEmail != "" {
		sender := email.NewResendClient(
			cfg.Reminder.ResendAPIKey,
			cfg.Reminder.FromName,
			cfg.Reminder.FromEmail,
			cfg.Reminder.ToEmail,
		)
		worker = reminder.NewWorker(redisClient, sender, reminder.WorkerConfig{
			PollInterval: cfg.Reminder.PollInterval,
			BatchSize:    cfg.Reminder.BatchSize,
		})
	}

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         r,
		ReminderWorker: worker,
	}
}

// newPredictionService selects the purchase prediction strategy from config,
// falling back to the interval strategy when Gemini is not configured.
func newPredictionService(cfg *config.Config) adapter.PurchasePredictionService {
	if cfg.Prediction.Strategy == "gemini" && cfg.Prediction.GeminiAPIKey != "" {
		return adapters.NewGeminiPredictionService(cfg.Prediction.GeminiAPIKey)
	}
	return adapters.NewIntervalPredictionService()
}
