// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finanzas-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	categoryController    *controller.CategoryController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	goalController        *controller.GoalController
	uploadController      *controller.UploadController
	goalRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	goalController *controller.GoalController,
	uploadController *controller.UploadController,
	goalRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		categoryController:    categoryController,
		accountController:     accountController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		goalController:        goalController,
		uploadController:      uploadController,
		goalRateLimiter:       goalRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")
	{
		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
			}
		}

		if r.accountController != nil {
			accounts := v1.Group("/accounts")
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
			}
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.POST("/import", r.transactionController.ImportCSV)
				transactions.GET("/export", r.transactionController.ExportCSV)
			}
		}

		if r.dashboardController != nil {
			v1.GET("/dashboard", r.dashboardController.Get)
		}

		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				if r.goalRateLimiter != nil {
					goals.POST("/calculate", r.goalRateLimiter.Middleware(), r.goalController.Calculate)
				} else {
					goals.POST("/calculate", r.goalController.Calculate)
				}
			}
		}

		if r.uploadController != nil {
			uploads := v1.Group("/uploads")
			{
				uploads.POST("/receipts", r.uploadController.UploadReceipt)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
