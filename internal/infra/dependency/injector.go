// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/e-budget/backend/config"
	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/application/usecase/account"
	"github.com/e-budget/backend/internal/application/usecase/budget"
	"github.com/e-budget/backend/internal/application/usecase/category"
	"github.com/e-budget/backend/internal/application/usecase/expense"
	"github.com/e-budget/backend/internal/application/usecase/income"
	"github.com/e-budget/backend/internal/application/usecase/transfer"
	"github.com/e-budget/backend/internal/domain/entity"
	"github.com/e-budget/backend/internal/infra/server/router"
	"github.com/e-budget/backend/internal/integration/entrypoint/controller"
	"github.com/e-budget/backend/internal/integration/entrypoint/middleware"
	"github.com/e-budget/backend/internal/integration/messaging"
	"github.com/e-budget/backend/internal/integration/persistence"
)

// Options carries infrastructure built outside the injector.
// Zero values fall back to a no-op publisher and an in-memory rate limit store.
type Options struct {
	Publisher          adapter.EventPublisher
	RateLimitStore     middleware.RateLimitStore
	DBHealthChecker    func() bool
	CacheHealthChecker func() bool
}

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	publisher := opts.Publisher
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}

	rateLimitStore := opts.RateLimitStore
	if rateLimitStore == nil {
		rateLimitStore = middleware.NewMemoryStore(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	balanceSeed := entity.BalanceSeed(cfg.Ledger.BalanceSeed)
	deletePeriod := entity.PeriodSource(cfg.Ledger.ExpenseDeletePeriod)

	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	transferRepo := persistence.NewTransferRepository(db)
	uow := persistence.NewUnitOfWork(db)

	// Create account use cases
	accountController := controller.NewAccountController(
		account.NewCreateAccountUseCase(accountRepo, balanceSeed),
		account.NewListAccountsUseCase(accountRepo),
		account.NewGetAccountUseCase(accountRepo),
		account.NewUpdateAccountUseCase(accountRepo),
		account.NewDeleteAccountUseCase(accountRepo),
	)

	// Create category use cases
	categoryController := controller.NewCategoryController(
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewGetCategoryUseCase(categoryRepo),
		category.NewUpdateCategoryUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo),
	)

	// Create budget use cases
	budgetController := controller.NewBudgetController(
		budget.NewCreateBudgetUseCase(uow),
		budget.NewListBudgetsUseCase(budgetRepo),
		budget.NewGetBudgetUseCase(budgetRepo),
		budget.NewUpdateBudgetUseCase(uow),
		budget.NewDeleteBudgetUseCase(budgetRepo),
	)

	// Create movement use cases
	expenseController := controller.NewExpenseController(
		expense.NewCreateExpenseUseCase(uow, publisher),
		expense.NewListExpensesUseCase(expenseRepo),
		expense.NewGetExpenseUseCase(expenseRepo),
		expense.NewUpdateExpenseUseCase(uow, publisher),
		expense.NewDeleteExpenseUseCase(uow, publisher, deletePeriod),
	)

	incomeController := controller.NewIncomeController(
		income.NewCreateIncomeUseCase(uow, publisher),
		income.NewListIncomesUseCase(incomeRepo),
		income.NewGetIncomeUseCase(incomeRepo),
		income.NewUpdateIncomeUseCase(uow, publisher),
		income.NewDeleteIncomeUseCase(uow, publisher),
	)

	transferController := controller.NewTransferController(
		transfer.NewCreateTransferUseCase(uow, publisher),
		transfer.NewListTransfersUseCase(transferRepo),
		transfer.NewGetTransferUseCase(transferRepo),
		transfer.NewDeleteTransferUseCase(uow, publisher),
	)

	healthController := controller.NewHealthController(opts.DBHealthChecker, opts.CacheHealthChecker)

	r := router.NewRouter(
		healthController,
		accountController,
		categoryController,
		budgetController,
		expenseController,
		incomeController,
		transferController,
		middleware.NewRateLimiter(rateLimitStore, cfg.RateLimit.Enabled),
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
