package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/ledger"
	"github.com/e-budget/backend/internal/application/usecase/usecasetest"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

func TestSessionAccountIdentity(t *testing.T) {
	l := usecasetest.New(t)
	account := l.Account(t, "Checking", "100")
	ctx := context.Background()

	session := ledger.NewSession(l.Repos)

	first, err := session.Account(ctx, account.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := session.Account(ctx, account.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatal("expected the same pointer for the same account")
	}

	first.Withdraw(usecasetest.Dec("25"))
	second.Deposit(usecasetest.Dec("10"))

	if err := session.Flush(ctx); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	l.AssertBalance(t, account.ID, "85")

	if ids := session.AccountIDs(); len(ids) != 1 || ids[0] != account.ID {
		t.Errorf("expected one touched account, got %v", ids)
	}
}

func TestSessionBudgetFor(t *testing.T) {
	l := usecasetest.New(t)
	category := l.Category(t, "Food")
	budget := l.Budget(t, category.ID, 3, 2024, "50")
	ctx := context.Background()

	session := ledger.NewSession(l.Repos)
	period := entity.Period{CategoryID: category.ID, Month: 3, Year: 2024}

	found, err := session.BudgetFor(ctx, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil || found.ID != budget.ID {
		t.Fatalf("expected budget %s, got %+v", budget.ID, found)
	}

	again, err := session.BudgetFor(ctx, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != found {
		t.Error("expected cached budget pointer")
	}

	missing, err := session.BudgetFor(ctx, entity.Period{CategoryID: category.ID, Month: 4, Year: 2024})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected no budget for April, got %+v", missing)
	}

	found.Subtract(usecasetest.Dec("30"))
	again.Add(usecasetest.Dec("10"))
	if err := session.Flush(ctx); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}

	l.AssertBudget(t, budget.ID, "20", "30", "40")
	if ids := session.BudgetIDs(); len(ids) != 1 {
		t.Errorf("expected one touched budget, got %v", ids)
	}
}

func TestSessionMissingAccount(t *testing.T) {
	l := usecasetest.New(t)
	session := ledger.NewSession(l.Repos)
	id := uuid.New()

	_, err := session.Account(context.Background(), id)
	if !errors.Is(err, domainerror.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	mapped := ledger.LookupError(err, domainerror.ErrAccountNotFound, id)
	var ledgerErr *domainerror.LedgerError
	if !errors.As(mapped, &ledgerErr) {
		t.Fatalf("expected LedgerError, got %T", mapped)
	}
	if ledgerErr.Kind != domainerror.KindEntityNotFound {
		t.Errorf("expected kind %s, got %s", domainerror.KindEntityNotFound, ledgerErr.Kind)
	}
}

func TestLookupErrorWrapsOtherFailures(t *testing.T) {
	cause := errors.New("connection reset")

	err := ledger.LookupError(cause, domainerror.ErrAccountNotFound, uuid.New())

	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		t.Error("expected infrastructure failure not to become a LedgerError")
	}
}
