// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/e-budget/backend/internal/integration/entrypoint/controller"
	"github.com/e-budget/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	accountController  *controller.AccountController
	categoryController *controller.CategoryController
	budgetController   *controller.BudgetController
	expenseController  *controller.ExpenseController
	incomeController   *controller.IncomeController
	transferController *controller.TransferController
	rateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	budgetController *controller.BudgetController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	transferController *controller.TransferController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		accountController:  accountController,
		categoryController: categoryController,
		budgetController:   budgetController,
		expenseController:  expenseController,
		incomeController:   incomeController,
		transferController: transferController,
		rateLimiter:        rateLimiter,
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

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the ledger API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	accounts := v1.Group("/accounts")
	{
		accounts.GET("", r.accountController.List)
		accounts.POST("", r.accountController.Create)
		accounts.GET("/:id", r.accountController.Get)
		accounts.PUT("/:id", r.accountController.Update)
		accounts.DELETE("/:id", r.accountController.Delete)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.GET("/:id", r.categoryController.Get)
		categories.PUT("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	budgets := v1.Group("/budgets")
	{
		budgets.GET("", r.budgetController.List)
		budgets.POST("", r.budgetController.Create)
		budgets.GET("/:id", r.budgetController.Get)
		budgets.PUT("/:id", r.budgetController.Update)
		budgets.DELETE("/:id", r.budgetController.Delete)
	}

	expenses := v1.Group("/expenses")
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.expenseController.Create)
		expenses.GET("/:id", r.expenseController.Get)
		expenses.PUT("/:id", r.expenseController.Update)
		expenses.DELETE("/:id", r.expenseController.Delete)
	}

	incomes := v1.Group("/incomes")
	{
		incomes.GET("", r.incomeController.List)
		incomes.POST("", r.incomeController.Create)
		incomes.GET("/:id", r.incomeController.Get)
		incomes.PUT("/:id", r.incomeController.Update)
		incomes.DELETE("/:id", r.incomeController.Delete)
	}

	// Transfers are immutable once recorded.
	transfers := v1.Group("/transfers")
	{
		transfers.GET("", r.transferController.List)
		transfers.POST("", r.transferController.Create)
		transfers.GET("/:id", r.transferController.Get)
		transfers.DELETE("/:id", r.transferController.Delete)
	}
}
