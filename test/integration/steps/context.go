// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/finpulse/backend/config"
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
	"github.com/finpulse/backend/internal/integration/persistence/model"
	"github.com/finpulse/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri     string
	headers map[string]string
	client  *http.Client

	response *response
	db       *mock.Db

	accessToken  string
	refreshToken string

	currentUserID     uuid.UUID
	currentAccountID  uuid.UUID
	currentBudgetID   uuid.UUID
	currentGoalID     uuid.UUID
	currentInsightID  uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	body   any
}

var (
	serverInit     sync.Once
	portInit       sync.Once
	testDB         *mock.Db
	testRedis      *redis.Client
	testEmail      *email.MockEmailSender
	testWorker     *email.Worker
	testServerPort int
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
	})
}

// InitializeTestSuite prepares suite-wide state before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(initializePort)
}

// InitializeScenario registers all step definitions for the feature suite.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb("finpulse", map[string]any{
			"users":                   &model.UserModel{},
			"refresh_tokens":          &model.RefreshTokenModel{},
			"accounts":                &model.AccountModel{},
			"transactions":            &model.TransactionModel{},
			"budgets":                 &model.BudgetModel{},
			"budget_allocations":      &model.BudgetAllocationModel{},
			"goals":                   &model.GoalModel{},
			"financial_health_scores": &model.HealthScoreModel{},
			"insights":                &model.InsightModel{},
			"email_queue":             &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Data setup steps
	ctx.Given(`^an account exists named "([^"]*)" of type "([^"]*)" with balance "([^"]*)"$`, test.anAccountExists)
	ctx.Given(`^the following transactions exist:$`, test.theFollowingTransactionsExist)
	ctx.Given(`^a monthly budget exists named "([^"]*)" with total "([^"]*)"$`, test.aMonthlyBudgetExists)
	ctx.Given(`^a monthly budget exists named "([^"]*)" with total "([^"]*)" and the following allocations:$`, test.aMonthlyBudgetExistsWithAllocations)
	ctx.Given(`^a goal exists named "([^"]*)" of type "([^"]*)" with target "([^"]*)"$`, test.aGoalExists)
	ctx.Given(`^an insight exists with title "([^"]*)"$`, test.anInsightExistsWithTitle)
	ctx.Given(`^a dismissed insight exists with title "([^"]*)"$`, test.aDismissedInsightExistsWithTitle)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Email worker steps
	ctx.When(`^the email worker processes pending jobs$`, test.theEmailWorkerProcessesPendingJobs)
	ctx.Then(`^(\d+) alert emails should have been sent$`, test.alertEmailsShouldHaveBeenSent)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentAccountID = uuid.Nil
	t.currentBudgetID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.currentInsightID = uuid.Nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if testRedis != nil {
		_ = testRedis.FlushAll(context.Background()).Err()
	}
	if testEmail != nil {
		testEmail.Reset()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		testRedis = mock.NewRedis()
		testEmail = email.NewMockEmailSender()
		testWorker = email.NewWorker(
			persistence.NewEmailQueueRepository(testDB.DbConn),
			testEmail,
			email.DefaultWorkerConfig(),
		)

		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			db := testDB.DbConn

			userRepo := persistence.NewUserRepository(db)
			tokenRepo := persistence.NewTokenRepository(db)
			accountRepo := persistence.NewAccountRepository(db)
			transactionRepo := persistence.NewTransactionRepository(db)
			budgetRepo := persistence.NewBudgetRepository(db)
			goalRepo := persistence.NewGoalRepository(db)
			scoreRepo := persistence.NewHealthScoreRepository(db)
			insightRepo := persistence.NewInsightRepository(db)
			emailQueueRepo := persistence.NewEmailQueueRepository(db)

			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			cacheService := adapters.NewRedisCacheService(testRedis)

			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)

			createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
			listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
			updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
			deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo)
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

			createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
			getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, transactionRepo, cfg.Engine)
			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
			deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

			createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
			listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
			updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
			deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

			calculateHealthUseCase := analysis.NewCalculateHealthUseCase(
				accountRepo, transactionRepo, budgetRepo, goalRepo, scoreRepo, cacheService, cfg.Engine,
			)
			latestScoreUseCase := analysis.NewGetLatestScoreUseCase(scoreRepo, cacheService)
			scoreHistoryUseCase := analysis.NewGetScoreHistoryUseCase(scoreRepo)

			analyzeUseCase := insight.NewAnalyzeSpendingPatternsUseCase(
				userRepo, accountRepo, transactionRepo, budgetRepo, goalRepo,
				insightRepo, emailQueueRepo, cacheService, cfg.Engine,
			)
			listInsightsUseCase := insight.NewListInsightsUseCase(insightRepo)
			markInsightReadUseCase := insight.NewMarkInsightReadUseCase(insightRepo)
			dismissInsightUseCase := insight.NewDismissInsightUseCase(insightRepo)

			getDashboardUseCase := dashboard.NewGetDashboardUseCase(
				accountRepo, transactionRepo, budgetRepo, goalRepo, scoreRepo,
				insightRepo, cacheService, cfg.Redis.DashboardTTL, cfg.Engine,
			)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
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

			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
			analysisRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController, authController, accountController, transactionController,
				budgetController, goalController, analysisController, insightController,
				dashboardController, loginRateLimiter, analysisRateLimiter, authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "SecurePass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, fullName string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                   userID,
		Email:                email,
		FullName:             fullName,
		PasswordHash:         hashPassword(password),
		IsActive:             true,
		SubscriptionTier:     "free",
		InsightAlertsEnabled: true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs ensures the user exists and signs a token pair for them.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := t.createUser(email, "SecurePass123!", "Test User"); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return err
		}
	}

	t.currentUserID = userModel.ID
	return t.issueTokens(email)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokens("test@example.com")
}

func (t *testContext) issueTokens(email string) error {
	accessToken, err := signTestToken(t.currentUserID, email, "access", 15*time.Minute)
	if err != nil {
		return err
	}
	t.accessToken = accessToken

	refreshToken, err := signTestToken(t.currentUserID, email, "refresh", 7*24*time.Hour)
	if err != nil {
		return err
	}
	t.refreshToken = refreshToken

	now := time.Now().UTC()
	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func signTestToken(userID uuid.UUID, email, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "finpulse",
		"sub":        userID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign test token: %w", err)
	}
	return signed, nil
}

func (t *testContext) anAccountExists(name, accountType, balance string) error {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	accountID := uuid.New()
	t.currentAccountID = accountID

	now := time.Now().UTC()
	accountModel := &model.AccountModel{
		ID:               accountID,
		UserID:           t.currentUserID,
		Name:             name,
		Type:             accountType,
		CurrentBalance:   amount,
		AvailableBalance: amount,
		CurrencyCode:     "USD",
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return t.db.DbConn.Create(accountModel).Error
}

// theFollowingTransactionsExist seeds transactions from a table with
// columns name, amount, category and days_ago, plus optional merchant
// and recurring columns. Dates are relative so scenarios stay inside
// the engine's analysis windows.
func (t *testContext) theFollowingTransactionsExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("transactions table needs a header row and at least one data row")
	}

	columns := make(map[string]int, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}

	for _, row := range table.Rows[1:] {
		cell := func(name string) string {
			if i, ok := columns[name]; ok && i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}

		amount, err := decimal.NewFromString(cell("amount"))
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", cell("amount"), err)
		}
		daysAgo, err := strconv.Atoi(cell("days_ago"))
		if err != nil {
			return fmt.Errorf("invalid days_ago %q: %w", cell("days_ago"), err)
		}

		now := time.Now().UTC()
		transactionModel := &model.TransactionModel{
			ID:           uuid.New(),
			UserID:       t.currentUserID,
			AccountID:    t.currentAccountID,
			Amount:       amount,
			CurrencyCode: "USD",
			Name:         cell("name"),
			MerchantName: cell("merchant"),
			Category:     cell("category"),
			Date:         now.AddDate(0, 0, -daysAgo),
			IsRecurring:  cell("recurring") == "true",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if transactionModel.IsRecurring {
			transactionModel.RecurringFrequency = "monthly"
		}

		t.lastTransactionID = transactionModel.ID

		if err := t.db.DbConn.Create(transactionModel).Error; err != nil {
			return err
		}
	}

	return nil
}

func (t *testContext) aMonthlyBudgetExists(name, total string) error {
	return t.createBudget(name, total, nil)
}

func (t *testContext) aMonthlyBudgetExistsWithAllocations(name, total string, table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("allocations table needs a header row and at least one data row")
	}

	allocations := make(map[string]decimal.Decimal)
	for _, row := range table.Rows[1:] {
		if len(row.Cells) < 2 {
			return errors.New("allocation rows need category and amount columns")
		}
		amount, err := decimal.NewFromString(row.Cells[1].Value)
		if err != nil {
			return fmt.Errorf("invalid allocation amount %q: %w", row.Cells[1].Value, err)
		}
		allocations[row.Cells[0].Value] = amount
	}

	return t.createBudget(name, total, allocations)
}

func (t *testContext) createBudget(name, total string, allocations map[string]decimal.Decimal) error {
	totalBudget, err := decimal.NewFromString(total)
	if err != nil {
		return fmt.Errorf("invalid total %q: %w", total, err)
	}

	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	budgetModel := &model.BudgetModel{
		ID:          budgetID,
		UserID:      t.currentUserID,
		Name:        name,
		Period:      "monthly",
		TotalBudget: totalBudget,
		StartDate:   time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for category, amount := range allocations {
		budgetModel.Allocations = append(budgetModel.Allocations, model.BudgetAllocationModel{
			ID:              uuid.New(),
			BudgetID:        budgetID,
			Category:        category,
			AllocatedAmount: amount,
		})
	}

	return t.db.DbConn.Create(budgetModel).Error
}

func (t *testContext) aGoalExists(name, goalType, target string) error {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", target, err)
	}

	goalID := uuid.New()
	t.currentGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:            goalID,
		UserID:        t.currentUserID,
		Name:          name,
		Type:          goalType,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    now.AddDate(1, 0, 0),
		Priority:      3,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) anInsightExistsWithTitle(title string) error {
	return t.createInsight(title, false)
}

func (t *testContext) aDismissedInsightExistsWithTitle(title string) error {
	return t.createInsight(title, true)
}

func (t *testContext) createInsight(title string, dismissed bool) error {
	insightID := uuid.New()
	t.currentInsightID = insightID

	insightModel := &model.InsightModel{
		ID:              insightID,
		UserID:          t.currentUserID,
		Type:            "spending_pattern",
		Title:           title,
		Description:     "Seeded insight for integration tests",
		Importance:      2,
		ConfidenceScore: 0.8,
		ActionItems:     pq.StringArray{"Review recent spending"},
		DataPoints:      model.StringMap{"category": "food_dining"},
		IsDismissed:     dismissed,
		CreatedAt:       time.Now().UTC(),
	}

	return t.db.DbConn.Create(insightModel).Error
}

func (t *testContext) theEmailWorkerProcessesPendingJobs() error {
	if testWorker == nil {
		return errors.New("email worker not initialized, start the server first")
	}
	testWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) alertEmailsShouldHaveBeenSent(expectedCount int) error {
	if testEmail == nil {
		return errors.New("email sender not initialized, start the server first")
	}
	if len(testEmail.SentEmails) != expectedCount {
		return fmt.Errorf("expected %d sent emails, got %d", expectedCount, len(testEmail.SentEmails))
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{account_id}}", t.currentAccountID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{insight_id}}", t.currentInsightID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIdentifiers(path, responseBody)

	return nil
}

// captureIdentifiers records ids and tokens from the response so later
// steps can reference the created resources through placeholders.
func (t *testContext) captureIdentifiers(path string, body map[string]any) {
	if token, ok := body["access_token"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := body["refresh_token"].(string); ok && token != "" {
		t.refreshToken = token
	}
	if user, ok := body["user"].(map[string]any); ok {
		if idStr, ok := user["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.currentUserID = id
			}
		}
	}

	if idStr, ok := body["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			switch {
			case strings.Contains(path, "/accounts"):
				t.currentAccountID = id
			case strings.Contains(path, "/transactions"):
				t.lastTransactionID = id
			case strings.Contains(path, "/budgets"):
				t.currentBudgetID = id
			case strings.Contains(path, "/goals"):
				t.currentGoalID = id
			}
		}
	}

	if insights, ok := body["insights"].([]any); ok && len(insights) > 0 {
		if first, ok := insights[0].(map[string]any); ok {
			if idStr, ok := first["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.currentInsightID = id
				}
			}
		}
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field %q: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseListShouldHaveItems(field string, expectedCount int) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list: %v", field, value)
	}
	if len(list) != expectedCount {
		return fmt.Errorf("field %q expected %d items, got %d", field, expectedCount, len(list))
	}
	return nil
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return nil, fmt.Errorf("field %q not found in response: %v", field, body)
	}
	return value, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
