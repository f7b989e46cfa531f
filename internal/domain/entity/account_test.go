package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewAccountBalanceSeed(t *testing.T) {
	tests := []struct {
		name            string
		seed            BalanceSeed
		expectedBalance string
	}{
		{name: "initial seed", seed: BalanceSeedInitial, expectedBalance: "150"},
		{name: "zero seed", seed: BalanceSeedZero, expectedBalance: "0"},
		{name: "unset seed behaves as initial", seed: "", expectedBalance: "150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccount("Checking", "", AccountTypeBank, dec("150"), tt.seed)

			if !a.Balance.Equal(dec(tt.expectedBalance)) {
				t.Errorf("expected balance %s, got %s", tt.expectedBalance, a.Balance)
			}
			if !a.InitialBalance.Equal(dec("150")) {
				t.Errorf("expected initial balance 150, got %s", a.InitialBalance)
			}
			if a.FinancialInstitution != DefaultFinancialInstitution {
				t.Errorf("expected institution %s, got %s", DefaultFinancialInstitution, a.FinancialInstitution)
			}
		})
	}
}

func TestAccountWithdrawDepositRoundTrip(t *testing.T) {
	a := NewAccount("Wallet", "Bank", AccountTypeCash, decimal.Zero, BalanceSeedInitial)

	a.Withdraw(dec("30"))
	if !a.Balance.Equal(dec("-30")) {
		t.Fatalf("expected overdraft to -30, got %s", a.Balance)
	}

	a.Deposit(dec("30"))
	if !a.Balance.IsZero() {
		t.Errorf("expected balance back to 0, got %s", a.Balance)
	}
}

func TestAccountTypeIsValid(t *testing.T) {
	for _, accountType := range []AccountType{
		AccountTypeBank, AccountTypeBenefit, AccountTypeCreditCard, AccountTypeInvestment, AccountTypeCash,
	} {
		if !accountType.IsValid() {
			t.Errorf("expected %s to be valid", accountType)
		}
	}

	if AccountType("SAVINGS").IsValid() {
		t.Error("expected SAVINGS to be invalid")
	}
}

func TestAccountRename(t *testing.T) {
	a := NewAccount("Old", "Bank", AccountTypeBank, dec("10"), BalanceSeedInitial)

	a.Rename("New", "", AccountTypeInvestment)

	if a.Name != "New" || a.Type != AccountTypeInvestment {
		t.Errorf("unexpected account after rename: %+v", a)
	}
	if a.FinancialInstitution != DefaultFinancialInstitution {
		t.Errorf("expected empty institution to default, got %s", a.FinancialInstitution)
	}
	if !a.Balance.Equal(dec("10")) {
		t.Errorf("expected rename to keep balance, got %s", a.Balance)
	}
}
