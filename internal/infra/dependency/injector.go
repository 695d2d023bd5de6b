// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finpulse/backend/config"
	"github.com/finpulse/backend/internal/application/adapter"
	"github.com/finpulse/backend/internal/application/usecase/account"
	"github.com/finpulse/backend/internal/application/usecase/analysis"
	"github.com/finpulse/backend/internal/application/usecase/auth"
	"github.com/finpulse/backend/internal/application/usecase/budget"
	"github.com/finpulse/backend/internal/application/usecase/dashboard"
	"github.com/finpulse/backend/internal/application/usecase/goal"
	"github.com/finpulse/backend/internal/application/usecase/insight"
	"github.com/finpulse/backend/internal/application/usecase/transaction"
	"github.com/finpulse/backend/internal/infra/server/router"
	"github.com/finpulse/backend/internal/integration/adapters"
	"github.com/finpulse/backend/internal/integration/email"
	"github.com/finpulse/backend/internal/integration/entrypoint/controller"
	"github.com/finpulse/backend/internal/integration/entrypoint/middleware"
	"github.com/finpulse/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailQueue  adapter.EmailQueueRepository
	EmailSender adapter.EmailSender
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	scoreRepo := persistence.NewHealthScoreRepository(db)
	insightRepo := persistence.NewInsightRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	cacheService := adapters.NewRedisCacheService(redisClient)
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)

	// Account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, transactionRepo, cfg.Engine)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Analysis use cases
	calculateHealthUseCase := analysis.NewCalculateHealthUseCase(
		accountRepo, transactionRepo, budgetRepo, goalRepo, scoreRepo, cacheService, cfg.Engine,
	)
	latestScoreUseCase := analysis.NewGetLatestScoreUseCase(scoreRepo, cacheService)
	scoreHistoryUseCase := analysis.NewGetScoreHistoryUseCase(scoreRepo)

	// Insight use cases
	analyzeUseCase := insight.NewAnalyzeSpendingPatternsUseCase(
		userRepo, accountRepo, transactionRepo, budgetRepo, goalRepo,
		insightRepo, emailQueueRepo, cacheService, cfg.Engine,
	)
	listInsightsUseCase := insight.NewListInsightsUseCase(insightRepo)
	markInsightReadUseCase := insight.NewMarkInsightReadUseCase(insightRepo)
	dismissInsightUseCase := insight.NewDismissInsightUseCase(insightRepo)

	// Dashboard use case
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(
		accountRepo, transactionRepo, budgetRepo, goalRepo, scoreRepo,
		insightRepo, cacheService, cfg.Redis.DashboardTTL, cfg.Engine,
	)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase)
	accountController := controller.NewAccountController(
		createAccountUseCase, listAccountsUseCase, updateAccountUseCase, deleteAccountUseCase,
	)
	transactionController := controller.NewTransactionController(createTransactionUseCase, listTransactionsUseCase)
	budgetController := controller.NewBudgetController(
		createBudgetUseCase, getBudgetUseCase, listBudgetsUseCase, deleteBudgetUseCase,
	)
	goalController := controller.NewGoalController(
		createGoalUseCase, listGoalsUseCase, updateGoalUseCase, deleteGoalUseCase,
	)
	analysisController := controller.NewAnalysisController(
		calculateHealthUseCase, latestScoreUseCase, scoreHistoryUseCase,
	)
	insightController := controller.NewInsightController(
		analyzeUseCase, listInsightsUseCase, markInsightReadUseCase, dismissInsightUseCase,
	)
	dashboardController := controller.NewDashboardController(getDashboardUseCase)

	// Middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	var analysisRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
		analysisRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
		// Scoring reads the full transaction window on every call, so
		// recalculation gets its own per-IP budget.
		analysisRateLimiter = middleware.NewRateLimiterWithConfig(10, 1*time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		transactionController,
		budgetController,
		goalController,
		analysisController,
		insightController,
		dashboardController,
		loginRateLimiter,
		analysisRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailQueue:  emailQueueRepo,
		EmailSender: emailSender,
	}
}
