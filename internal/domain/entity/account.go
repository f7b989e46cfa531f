// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account money is held in.
type AccountType string

const (
	AccountTypeBank       AccountType = "BANK_ACCOUNT"
	AccountTypeBenefit    AccountType = "BENEFIT_ACCOUNT"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
	AccountTypeInvestment AccountType = "INVESTMENT_ACCOUNT"
	AccountTypeCash       AccountType = "CASH"
)

// IsValid reports whether the account type is one of the known types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeBank, AccountTypeBenefit, AccountTypeCreditCard, AccountTypeInvestment, AccountTypeCash:
		return true
	}
	return false
}

// DefaultFinancialInstitution is used when an account is not tied to a known institution.
const DefaultFinancialInstitution = "NONE"

// BalanceSeed selects how a new account's running balance starts.
type BalanceSeed string

const (
	// BalanceSeedInitial starts the balance at the account's initial balance.
	BalanceSeedInitial BalanceSeed = "initial"
	// BalanceSeedZero starts the balance at zero regardless of the initial balance.
	BalanceSeedZero BalanceSeed = "zero"
)

// Account is a ledger entity holding a running balance.
// Balance only changes through Withdraw and Deposit.
type Account struct {
	ID                   uuid.UUID
	Name                 string
	FinancialInstitution string
	Type                 AccountType
	InitialBalance       decimal.Decimal
	Balance              decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(name, institution string, accountType AccountType, initialBalance decimal.Decimal, seed BalanceSeed) *Account {
	now := time.Now().UTC()

	if institution == "" {
		institution = DefaultFinancialInstitution
	}

	balance := initialBalance
	if seed == BalanceSeedZero {
		balance = decimal.Zero
	}

	return &Account{
		ID:                   uuid.New(),
		Name:                 name,
		FinancialInstitution: institution,
		Type:                 accountType,
		InitialBalance:       initialBalance,
		Balance:              balance,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// Withdraw takes amount out of the account. Overdraft is allowed.
func (a *Account) Withdraw(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}

// Deposit puts amount into the account.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Rename updates the display metadata of the account.
func (a *Account) Rename(name, institution string, accountType AccountType) {
	if institution == "" {
		institution = DefaultFinancialInstitution
	}
	a.Name = name
	a.FinancialInstitution = institution
	a.Type = accountType
	a.UpdatedAt = time.Now().UTC()
}
