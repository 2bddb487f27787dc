package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"choirfin/internal/handlers"
	"choirfin/internal/logger"
	"choirfin/internal/middleware"
	"choirfin/internal/models"
	"choirfin/internal/services"
	"choirfin/internal/storage"
	"choirfin/internal/store"
	"choirfin/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Ledger  *store.Ledger
	Budgets *store.BudgetRegistry
	Rules   *store.RuleSet
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Transaction{},
		&models.Budget{},
		&models.RecurringRule{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	repo := storage.NewRepository(db)

	ledger := store.NewLedger()
	budgets := store.NewBudgetRegistry()
	rules := store.NewRuleSet()

	// Services
	ledgerService := services.NewLedgerService(ledger, rules, repo)
	budgetService := services.NewBudgetService(budgets, repo)
	recurringService := services.NewRecurringService(rules, repo)
	reportService := services.NewReportService(ledger, budgets, 10)
	obligationService := services.NewObligationService(ledger, rules, repo)
	snapshotService := services.NewSnapshotService(ledger, budgets, rules, repo)

	// Handlers
	authHandler := handlers.NewAuthHandler()
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	recurringHandler := handlers.NewRecurringHandler(recurringService)
	reportHandler := handlers.NewReportHandler(reportService)
	obligationHandler := handlers.NewObligationHandler(obligationService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)
	categoryHandler := handlers.NewCategoryHandler()

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgetRoutes := protected.Group("/budgets")
	budgetRoutes.PUT("", budgetHandler.UpsertBudget)
	budgetRoutes.GET("", budgetHandler.GetBudgets)
	budgetRoutes.DELETE("/:category", budgetHandler.DeleteBudget)

	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.CreateRule)
	recurring.GET("", recurringHandler.GetRules)
	recurring.DELETE("/:id", recurringHandler.DeleteRule)

	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/running-balance", reportHandler.GetRunningBalance)

	obligations := protected.Group("/obligations")
	obligations.GET("", obligationHandler.GetDue)
	obligations.POST("/:id/confirm", obligationHandler.Confirm)

	protected.GET("/export", snapshotHandler.Export)
	protected.POST("/import", snapshotHandler.Import)

	protected.GET("/categories", categoryHandler.GetRecommended)

	return &testApp{DB: db, Router: router, Ledger: ledger, Budgets: budgets, Rules: rules}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// login authenticates with the default admin credentials and returns the token.
func (app *testApp) login(t *testing.T) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"treasurer@choir.local","password":"changeme"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}
