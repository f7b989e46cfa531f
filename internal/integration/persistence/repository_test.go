package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
	"github.com/e-budget/backend/internal/integration/persistence"
	"github.com/e-budget/backend/internal/integration/persistence/persistencetest"
)

func seed(t *testing.T, repos adapter.Repositories) (*entity.Account, *entity.Category) {
	t.Helper()
	ctx := context.Background()

	account := entity.NewAccount("Checking", "Bank", entity.AccountTypeBank, decimal.RequireFromString("100.25"), entity.BalanceSeedInitial)
	if err := repos.Accounts.Create(ctx, account); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	category := entity.NewCategory("Food")
	if err := repos.Categories.Create(ctx, category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return account, category
}

func TestAccountRepositoryRoundTrip(t *testing.T) {
	repos := persistence.NewRepositories(persistencetest.Open(t))
	account, _ := seed(t, repos)
	ctx := context.Background()

	found, err := repos.Accounts.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.Balance.Equal(account.Balance) || found.Type != entity.AccountTypeBank {
		t.Errorf("unexpected account: %+v", found)
	}

	found.Withdraw(decimal.RequireFromString("0.25"))
	if err := repos.Accounts.Update(ctx, found); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	reloaded, err := repos.Accounts.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reloaded.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected balance 100, got %s", reloaded.Balance)
	}

	if _, err := repos.Accounts.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestBudgetRepositoryPeriodLookup(t *testing.T) {
	repos := persistence.NewRepositories(persistencetest.Open(t))
	_, category := seed(t, repos)
	ctx := context.Background()

	budget := entity.NewBudget(category.ID, 3, 2024, decimal.NewFromInt(50))
	if err := repos.Budgets.Create(ctx, budget); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}

	found, err := repos.Budgets.FindByCategoryMonthYear(ctx, category.ID, 3, 2024)
	if err != nil || found == nil || found.ID != budget.ID {
		t.Fatalf("expected budget %s, got %+v (%v)", budget.ID, found, err)
	}

	missing, err := repos.Budgets.FindByCategoryMonthYear(ctx, category.ID, 4, 2024)
	if err != nil || missing != nil {
		t.Errorf("expected (nil, nil) for an uncovered period, got %+v (%v)", missing, err)
	}

	count, err := repos.Budgets.CountByCategoryMonthYear(ctx, category.ID, 3, 2024)
	if err != nil || count != 1 {
		t.Errorf("expected count 1, got %d (%v)", count, err)
	}

	duplicate := entity.NewBudget(category.ID, 3, 2024, decimal.NewFromInt(80))
	if err := repos.Budgets.Create(ctx, duplicate); err == nil {
		t.Error("expected unique index to reject a second budget for the period")
	}

	details, err := repos.Budgets.FindDetailsByID(ctx, budget.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Category == nil || details.Category.Name != "Food" {
		t.Errorf("expected preloaded category, got %+v", details.Category)
	}

	if _, err := repos.Budgets.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound, got %v", err)
	}
}

func TestExpenseRepositoryDetails(t *testing.T) {
	repos := persistence.NewRepositories(persistencetest.Open(t))
	account, category := seed(t, repos)
	ctx := context.Background()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	categorized := entity.NewExpense("Groceries", 3, 2024, decimal.NewFromInt(30), &category.ID, account.ID, date)
	uncategorized := entity.NewExpense("Cash", 3, 2024, decimal.NewFromInt(5), nil, account.ID, date)
	for _, e := range []*entity.Expense{categorized, uncategorized} {
		if err := repos.Expenses.Create(ctx, e); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	details, err := repos.Expenses.FindDetailsByID(ctx, categorized.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Category == nil || details.Account == nil {
		t.Fatalf("expected account and category, got %+v", details)
	}
	if details.Expense.Date.Year() != 2024 || details.Expense.Date.Month() != time.March || details.Expense.Date.Day() != 15 {
		t.Errorf("expected date 2024-03-15, got %s", details.Expense.Date)
	}

	details, err = repos.Expenses.FindDetailsByID(ctx, uncategorized.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Category != nil || details.Expense.CategoryID != nil {
		t.Errorf("expected uncategorized expense, got %+v", details)
	}

	list, err := repos.Expenses.ListDetails(ctx)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 expenses, got %d", len(list))
	}

	if _, err := repos.Expenses.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestUnitOfWorkRollsBack(t *testing.T) {
	db := persistencetest.Open(t)
	repos := persistence.NewRepositories(db)
	account, _ := seed(t, repos)
	ctx := context.Background()
	failure := errors.New("boom")

	err := persistence.NewUnitOfWork(db).Do(ctx, func(ctx context.Context, tx adapter.Repositories) error {
		loaded, err := tx.Accounts.FindByID(ctx, account.ID)
		if err != nil {
			return err
		}
		loaded.Withdraw(decimal.NewFromInt(50))
		if err := tx.Accounts.Update(ctx, loaded); err != nil {
			return err
		}
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("expected the callback error, got %v", err)
	}

	reloaded, err := repos.Accounts.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reloaded.Balance.Equal(account.Balance) {
		t.Errorf("expected rollback to keep balance %s, got %s", account.Balance, reloaded.Balance)
	}
}

func TestForeignKeysProtectReferencedAccounts(t *testing.T) {
	repos := persistence.NewRepositories(persistencetest.Open(t))
	account, _ := seed(t, repos)
	ctx := context.Background()

	incomeEntry := entity.NewIncome("Salary", decimal.NewFromInt(10), account.ID)
	if err := repos.Incomes.Create(ctx, incomeEntry); err != nil {
		t.Fatalf("failed to create income: %v", err)
	}

	if err := repos.Accounts.Delete(ctx, account.ID); !errors.Is(err, domainerror.ErrEntityInUse) {
		t.Errorf("expected ErrEntityInUse deleting a referenced account, got %v", err)
	}
}

func TestForeignKeysProtectReferencedCategories(t *testing.T) {
	repos := persistence.NewRepositories(persistencetest.Open(t))
	_, category := seed(t, repos)
	ctx := context.Background()

	if err := repos.Budgets.Create(ctx, entity.NewBudget(category.ID, 3, 2024, decimal.NewFromInt(50))); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}

	if err := repos.Categories.Delete(ctx, category.ID); !errors.Is(err, domainerror.ErrEntityInUse) {
		t.Errorf("expected ErrEntityInUse deleting a referenced category, got %v", err)
	}
	if _, err := repos.Categories.FindByID(ctx, category.ID); err != nil {
		t.Errorf("expected category to survive, got %v", err)
	}
}
