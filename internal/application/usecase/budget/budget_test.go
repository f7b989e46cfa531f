package budget_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/usecase/budget"
	"github.com/e-budget/backend/internal/application/usecase/usecasetest"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

func kindOf(err error) domainerror.Kind {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Kind
	}
	return ""
}

func TestCreateBudget(t *testing.T) {
	l := usecasetest.New(t)
	food := l.Category(t, "Food")
	uc := budget.NewCreateBudgetUseCase(l.UOW)

	output, err := uc.Execute(context.Background(), budget.CreateBudgetInput{
		CategoryID:    food.ID,
		Month:         3,
		Year:          2024,
		MonthlyBudget: usecasetest.Dec("50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := output.Budget.Budget
	if output.Budget.Category.Name != "Food" {
		t.Errorf("expected category Food, got %s", output.Budget.Category.Name)
	}
	if !b.MonthlyBudgetUsed.IsZero() || !b.MonthlyBudgetUsedPercentage.IsZero() {
		t.Errorf("expected nothing used, got %s (%s%%)", b.MonthlyBudgetUsed, b.MonthlyBudgetUsedPercentage)
	}
	l.AssertBudget(t, b.ID, "0", "50", "0")
}

func TestCreateBudgetDuplicatePeriod(t *testing.T) {
	l := usecasetest.New(t)
	food := l.Category(t, "Food")
	uc := budget.NewCreateBudgetUseCase(l.UOW)

	input := budget.CreateBudgetInput{
		CategoryID:    food.ID,
		Month:         3,
		Year:          2024,
		MonthlyBudget: usecasetest.Dec("50"),
	}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input.MonthlyBudget = usecasetest.Dec("80")
	_, err := uc.Execute(context.Background(), input)
	if kindOf(err) != domainerror.KindBudgetAlreadyExists {
		t.Fatalf("expected BudgetAlreadyExists, got %v", err)
	}

	list, err := budget.NewListBudgetsUseCase(l.Repos.Budgets).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(list.Budgets) != 1 {
		t.Errorf("expected a single budget row, got %d", len(list.Budgets))
	}
}

func TestCreateBudgetErrors(t *testing.T) {
	l := usecasetest.New(t)
	food := l.Category(t, "Food")
	uc := budget.NewCreateBudgetUseCase(l.UOW)

	tests := []struct {
		name         string
		input        budget.CreateBudgetInput
		expectedKind domainerror.Kind
		expectedKeys []string
	}{
		{
			name:         "unknown category",
			input:        budget.CreateBudgetInput{CategoryID: uuid.New(), Month: 1, Year: 2024, MonthlyBudget: usecasetest.Dec("10")},
			expectedKind: domainerror.KindEntityNotFound,
		},
		{
			name:         "zero target",
			input:        budget.CreateBudgetInput{CategoryID: food.ID, Month: 1, Year: 2024, MonthlyBudget: usecasetest.Dec("0")},
			expectedKind: domainerror.KindValidation,
			expectedKeys: []string{"monthly_budget"},
		},
		{
			name:         "bad month and year",
			input:        budget.CreateBudgetInput{CategoryID: food.ID, Month: 0, Year: 0, MonthlyBudget: usecasetest.Dec("10")},
			expectedKind: domainerror.KindValidation,
			expectedKeys: []string{"month", "year"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if kindOf(err) != tt.expectedKind {
				t.Fatalf("expected kind %s, got %v", tt.expectedKind, err)
			}

			var ledgerErr *domainerror.LedgerError
			errors.As(err, &ledgerErr)
			if tt.expectedKeys == nil {
				return
			}
			if len(ledgerErr.Details) != len(tt.expectedKeys) {
				t.Fatalf("expected %d details, got %+v", len(tt.expectedKeys), ledgerErr.Details)
			}
			for i, key := range tt.expectedKeys {
				if ledgerErr.Details[i].Key != key {
					t.Errorf("expected detail %d key %s, got %s", i, key, ledgerErr.Details[i].Key)
				}
			}
		})
	}
}

func TestUpdateBudget(t *testing.T) {
	l := usecasetest.New(t)
	food := l.Category(t, "Food")
	march := l.Budget(t, food.ID, 3, 2024, "50")
	april := l.Budget(t, food.ID, 4, 2024, "50")
	uc := budget.NewUpdateBudgetUseCase(l.UOW)

	t.Run("target change on same period", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), budget.UpdateBudgetInput{
			BudgetID:      march.ID,
			Month:         3,
			Year:          2024,
			MonthlyBudget: usecasetest.Dec("200"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Budget.Budget.MonthlyBudgetBalance.Equal(usecasetest.Dec("200")) {
			t.Errorf("expected balance 200, got %s", output.Budget.Budget.MonthlyBudgetBalance)
		}
	})

	t.Run("moving onto an existing period is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), budget.UpdateBudgetInput{
			BudgetID:      march.ID,
			Month:         4,
			Year:          2024,
			MonthlyBudget: usecasetest.Dec("200"),
		})
		if kindOf(err) != domainerror.KindBudgetAlreadyExists {
			t.Fatalf("expected BudgetAlreadyExists, got %v", err)
		}
		if got := l.ReloadBudget(t, march.ID); got.Month != 3 {
			t.Errorf("expected budget to stay in March, got month %d", got.Month)
		}
	})

	t.Run("moving onto a free period", func(t *testing.T) {
		if _, err := uc.Execute(context.Background(), budget.UpdateBudgetInput{
			BudgetID:      april.ID,
			Month:         5,
			Year:          2024,
			MonthlyBudget: usecasetest.Dec("50"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := l.ReloadBudget(t, april.ID); got.Month != 5 {
			t.Errorf("expected budget in May, got month %d", got.Month)
		}
	})

	t.Run("missing budget", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), budget.UpdateBudgetInput{
			BudgetID:      uuid.New(),
			Month:         1,
			Year:          2024,
			MonthlyBudget: usecasetest.Dec("1"),
		})
		if kindOf(err) != domainerror.KindEntityNotFound {
			t.Fatalf("expected EntityNotFound, got %v", err)
		}
	})
}

func TestGetListDeleteBudget(t *testing.T) {
	l := usecasetest.New(t)
	food := l.Category(t, "Food")
	older := l.Budget(t, food.ID, 12, 2023, "10")
	newer := l.Budget(t, food.ID, 2, 2024, "10")

	list, err := budget.NewListBudgetsUseCase(l.Repos.Budgets).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(list.Budgets) != 2 || list.Budgets[0].Budget.ID != newer.ID || list.Budgets[1].Budget.ID != older.ID {
		t.Errorf("expected newest period first")
	}

	got, err := budget.NewGetBudgetUseCase(l.Repos.Budgets).Execute(context.Background(), budget.GetBudgetInput{BudgetID: older.ID})
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got.Budget.Category == nil || got.Budget.Category.ID != food.ID {
		t.Error("expected category to be loaded")
	}

	deleteUseCase := budget.NewDeleteBudgetUseCase(l.Repos.Budgets)
	if err := deleteUseCase.Execute(context.Background(), budget.DeleteBudgetInput{BudgetID: older.ID}); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if err := deleteUseCase.Execute(context.Background(), budget.DeleteBudgetInput{BudgetID: older.ID}); kindOf(err) != domainerror.KindEntityNotFound {
		t.Errorf("expected EntityNotFound on second delete, got %v", err)
	}
}
