// Package main is the entry point for the Finanzas Dashboard API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gcsstorage "cloud.google.com/go/storage"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/finanzas-dashboard/backend/config"
	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/account"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/category"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/goal"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/transaction"
	"github.com/finanzas-dashboard/backend/internal/infra/db"
	"github.com/finanzas-dashboard/backend/internal/infra/server/router"
	"github.com/finanzas-dashboard/backend/internal/integration/adapters"
	"github.com/finanzas-dashboard/backend/internal/integration/cache"
	"github.com/finanzas-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/finanzas-dashboard/backend/internal/integration/persistence"
	"github.com/finanzas-dashboard/backend/internal/integration/persistence/model"
	"github.com/finanzas-dashboard/backend/internal/integration/storage"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Finanzas Dashboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.CategoryModel{},
		&model.AccountModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	healthController := controller.NewHealthController(database.HealthCheck)

	// Entity cache: Redis when configured, otherwise pass-through.
	entityCache := buildCache(cfg)

	// Receipt storage: GCS when a bucket is configured.
	fileStorage := buildStorage(cfg)

	// Repositories
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	accountRepo := persistence.NewAccountRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, entityCache)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, entityCache)
	findOrCreateCategoryUseCase := category.NewFindOrCreateCategoryUseCase(categoryRepo, entityCache)

	// Account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo, entityCache)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo, entityCache)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, categoryRepo, accountRepo, entityCache)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo, findOrCreateCategoryUseCase, entityCache)
	importCSVUseCase := transaction.NewImportCSVUseCase(transactionRepo, accountRepo, findOrCreateCategoryUseCase, entityCache)
	exportCSVUseCase := transaction.NewExportCSVUseCase(listTransactionsUseCase)

	// Dashboard use case
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(listTransactionsUseCase, listAccountsUseCase)

	// Savings goal calculator
	advisor := buildAdvisor(cfg)
	tracker := goal.NewSubmissionTracker()
	calculateGoalUseCase := goal.NewCalculateGoalUseCase(advisor, tracker, cfg.Advisor.Timeout)

	// Controllers and middleware
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase)
	accountController := controller.NewAccountController(listAccountsUseCase, createAccountUseCase)
	transactionController := controller.NewTransactionController(listTransactionsUseCase, createTransactionUseCase, importCSVUseCase, exportCSVUseCase)
	dashboardController := controller.NewDashboardController(getDashboardUseCase)
	goalController := controller.NewGoalController(calculateGoalUseCase)
	uploadController := controller.NewUploadController(fileStorage)
	goalRateLimiter := middleware.NewRateLimiter()

	r := router.NewRouter(
		healthController,
		categoryController,
		accountController,
		transactionController,
		dashboardController,
		goalController,
		uploadController,
		goalRateLimiter,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// buildCache wires the Redis entity cache when an address is configured.
func buildCache(cfg *config.Config) adapter.EntityCache {
	if cfg.Redis.Addr == "" {
		slog.Info("Entity cache disabled, no Redis address configured")
		return cache.NewNoopCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	slog.Info("Entity cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	return cache.NewRedisCache(client, cfg.Redis.CacheTTL)
}

// buildStorage wires GCS receipt storage when a bucket is configured.
func buildStorage(cfg *config.Config) adapter.FileStorage {
	if cfg.Storage.Bucket == "" {
		slog.Info("Receipt storage disabled, no bucket configured")
		return storage.NewUnavailableStorage()
	}

	client, err := gcsstorage.NewClient(context.Background())
	if err != nil {
		slog.Warn("Receipt storage disabled, GCS client failed", "error", err)
		return storage.NewUnavailableStorage()
	}

	slog.Info("Receipt storage enabled", "bucket", cfg.Storage.Bucket)
	return storage.NewGCSStorage(client, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
}

// buildAdvisor picks the configured advisor: webhook first, Gemini fallback.
func buildAdvisor(cfg *config.Config) adapter.AdvisorService {
	if cfg.Advisor.WebhookURL != "" {
		slog.Info("Savings advisor enabled", "advisor", "webhook")
		return adapters.NewWebhookAdvisor(cfg.Advisor.WebhookURL)
	}
	if cfg.Advisor.GeminiAPIKey != "" {
		slog.Info("Savings advisor enabled", "advisor", "gemini", "model", cfg.Advisor.GeminiModel)
		return adapters.NewGeminiAdvisor(cfg.Advisor.GeminiAPIKey, cfg.Advisor.GeminiModel)
	}

	slog.Warn("Savings advisor disabled, no webhook or API key configured")
	return nil
}
