package income_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/usecase/income"
	"github.com/e-budget/backend/internal/application/usecase/usecasetest"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

func kindOf(err error) domainerror.Kind {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Kind
	}
	return ""
}

func TestCreateIncome(t *testing.T) {
	l := usecasetest.New(t)
	account := l.Account(t, "Checking", "0")

	uc := income.NewCreateIncomeUseCase(l.UOW, l.Publisher)
	output, err := uc.Execute(context.Background(), income.CreateIncomeInput{
		Description: "Salary",
		Amount:      usecasetest.Dec("100"),
		AccountID:   account.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Income.Account == nil || !output.Income.Account.Balance.Equal(usecasetest.Dec("100")) {
		t.Errorf("expected output account balance 100, got %+v", output.Income.Account)
	}
	l.AssertBalance(t, account.ID, "100")

	events := l.Publisher.Events()
	if len(events) != 1 || events[0].Type != entity.LedgerEventIncomeCreated {
		t.Fatalf("expected one income.created event, got %+v", events)
	}
	if len(events[0].BudgetIDs) != 0 {
		t.Errorf("expected income event without budgets, got %v", events[0].BudgetIDs)
	}
}

func TestCreateIncomeErrors(t *testing.T) {
	l := usecasetest.New(t)
	account := l.Account(t, "Checking", "0")
	uc := income.NewCreateIncomeUseCase(l.UOW, l.Publisher)

	tests := []struct {
		name         string
		input        income.CreateIncomeInput
		expectedKind domainerror.Kind
	}{
		{
			name:         "zero amount",
			input:        income.CreateIncomeInput{Description: "Gift", Amount: usecasetest.Dec("0"), AccountID: account.ID},
			expectedKind: domainerror.KindValidation,
		},
		{
			name:         "negative amount",
			input:        income.CreateIncomeInput{Description: "Gift", Amount: usecasetest.Dec("-5"), AccountID: account.ID},
			expectedKind: domainerror.KindValidation,
		},
		{
			name:         "missing account",
			input:        income.CreateIncomeInput{Description: "Gift", Amount: usecasetest.Dec("5"), AccountID: uuid.New()},
			expectedKind: domainerror.KindEntityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if got := kindOf(err); got != tt.expectedKind {
				t.Errorf("expected kind %s, got %q (%v)", tt.expectedKind, got, err)
			}
		})
	}

	l.AssertBalance(t, account.ID, "0")
}

func TestUpdateIncome(t *testing.T) {
	l := usecasetest.New(t)
	checking := l.Account(t, "Checking", "0")
	savings := l.Account(t, "Savings", "0")

	created, err := income.NewCreateIncomeUseCase(l.UOW, l.Publisher).Execute(context.Background(), income.CreateIncomeInput{
		Description: "Salary",
		Amount:      usecasetest.Dec("100"),
		AccountID:   checking.ID,
	})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	incomeID := created.Income.Income.ID

	uc := income.NewUpdateIncomeUseCase(l.UOW, l.Publisher)

	t.Run("amount change on same account", func(t *testing.T) {
		if _, err := uc.Execute(context.Background(), income.UpdateIncomeInput{
			IncomeID:    incomeID,
			Description: "Salary",
			Amount:      usecasetest.Dec("120"),
			AccountID:   checking.ID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l.AssertBalance(t, checking.ID, "120")
	})

	t.Run("moves to another account", func(t *testing.T) {
		if _, err := uc.Execute(context.Background(), income.UpdateIncomeInput{
			IncomeID:    incomeID,
			Description: "Salary",
			Amount:      usecasetest.Dec("80"),
			AccountID:   savings.ID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l.AssertBalance(t, checking.ID, "0")
		l.AssertBalance(t, savings.ID, "80")
	})

	t.Run("missing income", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), income.UpdateIncomeInput{
			IncomeID:  uuid.New(),
			Amount:    usecasetest.Dec("1"),
			AccountID: savings.ID,
		})
		if kindOf(err) != domainerror.KindEntityNotFound {
			t.Errorf("expected EntityNotFound, got %v", err)
		}
	})

	t.Run("missing new account rolls back", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), income.UpdateIncomeInput{
			IncomeID:  incomeID,
			Amount:    usecasetest.Dec("1"),
			AccountID: uuid.New(),
		})
		if kindOf(err) != domainerror.KindEntityNotFound {
			t.Errorf("expected EntityNotFound, got %v", err)
		}
		l.AssertBalance(t, savings.ID, "80")
	})
}

func TestDeleteIncome(t *testing.T) {
	l := usecasetest.New(t)
	account := l.Account(t, "Checking", "10")

	created, err := income.NewCreateIncomeUseCase(l.UOW, l.Publisher).Execute(context.Background(), income.CreateIncomeInput{
		Description: "Refund",
		Amount:      usecasetest.Dec("15.75"),
		AccountID:   account.ID,
	})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	uc := income.NewDeleteIncomeUseCase(l.UOW, l.Publisher)
	if err := uc.Execute(context.Background(), income.DeleteIncomeInput{IncomeID: created.Income.Income.ID}); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	l.AssertBalance(t, account.ID, "10")

	if err := uc.Execute(context.Background(), income.DeleteIncomeInput{IncomeID: created.Income.Income.ID}); kindOf(err) != domainerror.KindEntityNotFound {
		t.Errorf("expected second delete to be EntityNotFound, got %v", err)
	}

	list, err := income.NewListIncomesUseCase(l.Repos.Incomes).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(list.Incomes) != 0 {
		t.Errorf("expected no incomes, got %d", len(list.Incomes))
	}
}
