package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"choirfin/internal/config"
	"choirfin/internal/database"
	"choirfin/internal/handlers"
	"choirfin/internal/logger"
	"choirfin/internal/middleware"
	"choirfin/internal/services"
	"choirfin/internal/storage"
	"choirfin/internal/store"
	"choirfin/internal/validator"

	_ "choirfin/internal/docs" // Import swagger docs
)

// @title           Choirfin API
// @version         1.0
// @description     Choirfin backs the Finance view of the choir administration dashboard: an append-only transaction ledger with budget analytics and recurring obligations.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	repo := storage.NewRepository(dbManager.DB())

	// Hydrate the in-memory stores from the last persisted snapshot.
	ledger := store.NewLedger()
	budgets := store.NewBudgetRegistry()
	rules := store.NewRuleSet()
	if err := hydrate(repo, ledger, budgets, rules); err != nil {
		return fmt.Errorf("failed to load persisted collections: %w", err)
	}
	log.Infow("collections loaded",
		"transactions", ledger.Len(),
		"budgets", len(budgets.List()),
		"recurring_rules", len(rules.List()),
	)

	// Initialize services
	ledgerService := services.NewLedgerService(ledger, rules, repo)
	budgetService := services.NewBudgetService(budgets, repo)
	recurringService := services.NewRecurringService(rules, repo)
	reportService := services.NewReportService(ledger, budgets, appConfig.BalanceWindow)
	obligationService := services.NewObligationService(ledger, rules, repo)
	snapshotService := services.NewSnapshotService(ledger, budgets, rules, repo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler()
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	recurringHandler := handlers.NewRecurringHandler(recurringService)
	reportHandler := handlers.NewReportHandler(reportService)
	obligationHandler := handlers.NewObligationHandler(obligationService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)
	categoryHandler := handlers.NewCategoryHandler()

	validator.Register()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Ledger routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgetRoutes := protected.Group("/budgets")
	budgetRoutes.PUT("", budgetHandler.UpsertBudget)
	budgetRoutes.GET("", budgetHandler.GetBudgets)
	budgetRoutes.DELETE("/:category", budgetHandler.DeleteBudget)

	// Recurring rule routes
	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.CreateRule)
	recurring.GET("", recurringHandler.GetRules)
	recurring.DELETE("/:id", recurringHandler.DeleteRule)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/running-balance", reportHandler.GetRunningBalance)

	// Obligation routes
	obligations := protected.Group("/obligations")
	obligations.GET("", obligationHandler.GetDue)
	obligations.POST("/:id/confirm", obligationHandler.Confirm)

	// Snapshot routes
	protected.GET("/export", snapshotHandler.Export)
	protected.POST("/import", snapshotHandler.Import)

	// Category routes
	protected.GET("/categories", categoryHandler.GetRecommended)

	log.Infof("Starting choirfin backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// hydrate fills the stores from the persistence collaborator.
func hydrate(repo *storage.Repository, ledger *store.Ledger, budgets *store.BudgetRegistry, rules *store.RuleSet) error {
	txs, err := repo.LoadTransactions()
	if err != nil {
		return err
	}
	ledger.Replace(txs)

	budgetList, err := repo.LoadBudgets()
	if err != nil {
		return err
	}
	budgets.Replace(budgetList)

	ruleList, err := repo.LoadRecurring()
	if err != nil {
		return err
	}
	rules.Replace(ruleList)
	return nil
}
