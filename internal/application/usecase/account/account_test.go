package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/usecase/account"
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

func TestCreateAccount(t *testing.T) {
	tests := []struct {
		name            string
		seed            entity.BalanceSeed
		expectedBalance string
	}{
		{name: "seeded from initial balance", seed: entity.BalanceSeedInitial, expectedBalance: "250.40"},
		{name: "seeded at zero", seed: entity.BalanceSeedZero, expectedBalance: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := usecasetest.New(t)
			uc := account.NewCreateAccountUseCase(l.Repos.Accounts, tt.seed)

			output, err := uc.Execute(context.Background(), account.CreateAccountInput{
				Name:           "Checking",
				Type:           entity.AccountTypeBank,
				InitialBalance: usecasetest.Dec("250.40"),
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if output.Account.FinancialInstitution != entity.DefaultFinancialInstitution {
				t.Errorf("expected default institution, got %s", output.Account.FinancialInstitution)
			}
			l.AssertBalance(t, output.Account.ID, tt.expectedBalance)
		})
	}
}

func TestCreateAccountRejectsUnknownType(t *testing.T) {
	l := usecasetest.New(t)
	uc := account.NewCreateAccountUseCase(l.Repos.Accounts, entity.BalanceSeedInitial)

	_, err := uc.Execute(context.Background(), account.CreateAccountInput{
		Name:           "Piggy bank",
		Type:           entity.AccountType("PIGGY"),
		InitialBalance: usecasetest.Dec("1"),
	})
	if kindOf(err) != domainerror.KindValidation {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateAccountKeepsBalance(t *testing.T) {
	l := usecasetest.New(t)
	existing := l.Account(t, "Checking", "70")
	uc := account.NewUpdateAccountUseCase(l.Repos.Accounts)

	output, err := uc.Execute(context.Background(), account.UpdateAccountInput{
		AccountID:            existing.ID,
		Name:                 "Everyday",
		FinancialInstitution: "Acme Bank",
		Type:                 entity.AccountTypeCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Account.Name != "Everyday" || output.Account.Type != entity.AccountTypeCash {
		t.Errorf("unexpected account after update: %+v", output.Account)
	}
	l.AssertBalance(t, existing.ID, "70")

	_, err = uc.Execute(context.Background(), account.UpdateAccountInput{
		AccountID: uuid.New(),
		Name:      "Ghost",
		Type:      entity.AccountTypeCash,
	})
	if kindOf(err) != domainerror.KindEntityNotFound {
		t.Errorf("expected EntityNotFound, got %v", err)
	}
}

func TestGetListDeleteAccount(t *testing.T) {
	l := usecasetest.New(t)
	first := l.Account(t, "First", "1")
	l.Account(t, "Second", "2")

	list, err := account.NewListAccountsUseCase(l.Repos.Accounts).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(list.Accounts) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(list.Accounts))
	}

	got, err := account.NewGetAccountUseCase(l.Repos.Accounts).Execute(context.Background(), account.GetAccountInput{AccountID: first.ID})
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if got.Account.Name != "First" {
		t.Errorf("expected First, got %s", got.Account.Name)
	}

	deleteUseCase := account.NewDeleteAccountUseCase(l.Repos.Accounts)
	if err := deleteUseCase.Execute(context.Background(), account.DeleteAccountInput{AccountID: first.ID}); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	_, err = account.NewGetAccountUseCase(l.Repos.Accounts).Execute(context.Background(), account.GetAccountInput{AccountID: first.ID})
	if kindOf(err) != domainerror.KindEntityNotFound {
		t.Errorf("expected EntityNotFound after delete, got %v", err)
	}
	if err := deleteUseCase.Execute(context.Background(), account.DeleteAccountInput{AccountID: first.ID}); kindOf(err) != domainerror.KindEntityNotFound {
		t.Errorf("expected EntityNotFound on second delete, got %v", err)
	}
}
