package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/e-budget/backend/config"
	"github.com/e-budget/backend/internal/infra/dependency"
	"github.com/e-budget/backend/internal/integration/entrypoint/dto"
	"github.com/e-budget/backend/internal/integration/persistence/persistencetest"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		Server:    config.ServerConfig{Environment: "test"},
		RateLimit: config.RateLimitConfig{Enabled: false},
		Ledger: config.LedgerConfig{
			BalanceSeed:         "initial",
			ExpenseDeletePeriod: "date",
		},
	}
	db := persistencetest.Open(t)
	injector := dependency.NewInjector(cfg, db, dependency.Options{
		DBHealthChecker: func() bool { return true },
	})
	return injector.Router.Setup("test")
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
}

func createAccount(t *testing.T, engine *gin.Engine, name string) dto.AccountResponse {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/accounts", map[string]any{
		"name":            name,
		"type":            "BANK_ACCOUNT",
		"initial_balance": 0,
	})
	expectStatus(t, w, http.StatusCreated)
	return decode[dto.AccountResponse](t, w)
}

func TestHealth(t *testing.T) {
	engine := newEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/health", nil)
	expectStatus(t, w, http.StatusOK)

	body := decode[map[string]string](t, w)
	if body["status"] != "ok" || body["database"] != "connected" || body["cache"] != "disabled" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestLedgerFlowOverHTTP(t *testing.T) {
	engine := newEngine(t)
	a := createAccount(t, engine, "A")
	b := createAccount(t, engine, "B")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/categories", map[string]any{"name": "Food"})
	expectStatus(t, w, http.StatusCreated)
	food := decode[dto.CategoryResponse](t, w)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/budgets", map[string]any{
		"category_id":    food.ID,
		"month":          3,
		"year":           2024,
		"monthly_budget": "50",
	})
	expectStatus(t, w, http.StatusCreated)
	budget := decode[dto.BudgetResponse](t, w)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/incomes", map[string]any{
		"description": "Salary",
		"amount":      "100",
		"account_id":  a.ID,
	})
	expectStatus(t, w, http.StatusCreated)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/expenses", map[string]any{
		"description":   "Groceries",
		"expense_month": 3,
		"expense_year":  2024,
		"amount":        "30",
		"category_id":   food.ID,
		"account_id":    a.ID,
		"date":          "2024-03-15",
	})
	expectStatus(t, w, http.StatusCreated)
	expense := decode[dto.ExpenseResponse](t, w)
	if expense.Date != "2024-03-15" || expense.Amount != "30.00" {
		t.Errorf("unexpected expense response: %+v", expense)
	}

	w = doJSON(t, engine, http.MethodGet, "/api/v1/budgets/"+budget.ID, nil)
	expectStatus(t, w, http.StatusOK)
	budget = decode[dto.BudgetResponse](t, w)
	if budget.MonthlyBudgetUsed != "30.00" || budget.MonthlyBudgetBalance != "20.00" || budget.MonthlyBudgetUsedPercentage != "60.00" {
		t.Errorf("unexpected budget usage: %+v", budget)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/v1/transfers", map[string]any{
		"description":     "Savings",
		"amount":          "25",
		"from_account_id": a.ID,
		"to_account_id":   b.ID,
	})
	expectStatus(t, w, http.StatusCreated)
	transfer := decode[dto.TransferResponse](t, w)
	if transfer.FromAccount.Balance != "45.00" || transfer.ToAccount.Balance != "25.00" {
		t.Errorf("unexpected balances after transfer: %s / %s", transfer.FromAccount.Balance, transfer.ToAccount.Balance)
	}

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/transfers/"+transfer.ID, nil)
	expectStatus(t, w, http.StatusNoContent)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/expenses/"+expense.ID, nil)
	expectStatus(t, w, http.StatusNoContent)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/accounts/"+a.ID, nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[dto.AccountResponse](t, w); got.Balance != "100.00" {
		t.Errorf("expected balance 100.00 after reversals, got %s", got.Balance)
	}

	w = doJSON(t, engine, http.MethodGet, "/api/v1/accounts", nil)
	expectStatus(t, w, http.StatusOK)
	if list := decode[dto.AccountListResponse](t, w); len(list.Accounts) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(list.Accounts))
	}
}

func TestErrorResponses(t *testing.T) {
	engine := newEngine(t)
	a := createAccount(t, engine, "A")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/categories", map[string]any{"name": "Food"})
	expectStatus(t, w, http.StatusCreated)
	food := decode[dto.CategoryResponse](t, w)

	budgetBody := map[string]any{"category_id": food.ID, "month": 3, "year": 2024, "monthly_budget": "50"}
	expectStatus(t, doJSON(t, engine, http.MethodPost, "/api/v1/budgets", budgetBody), http.StatusCreated)

	tests := []struct {
		name         string
		method       string
		path         string
		body         any
		expectedCode int
		expectedKind string
		expectedKey  string
	}{
		{
			name:         "malformed id",
			method:       http.MethodGet,
			path:         "/api/v1/accounts/not-a-uuid",
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationError",
			expectedKey:  "id",
		},
		{
			name:         "unknown account",
			method:       http.MethodGet,
			path:         "/api/v1/accounts/" + uuid.NewString(),
			expectedCode: http.StatusNotFound,
			expectedKind: "EntityNotFound",
		},
		{
			name:         "missing initial balance",
			method:       http.MethodPost,
			path:         "/api/v1/accounts",
			body:         map[string]any{"name": "B", "type": "CASH"},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationError",
			expectedKey:  "initial_balance",
		},
		{
			name:         "unknown account type",
			method:       http.MethodPost,
			path:         "/api/v1/accounts",
			body:         map[string]any{"name": "B", "type": "SAVINGS", "initial_balance": "1"},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationError",
			expectedKey:  "type",
		},
		{
			name:         "malformed json",
			method:       http.MethodPost,
			path:         "/api/v1/categories",
			body:         "{",
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationError",
		},
		{
			name:         "duplicate budget",
			method:       http.MethodPost,
			path:         "/api/v1/budgets",
			body:         budgetBody,
			expectedCode: http.StatusBadRequest,
			expectedKind: "BudgetAlreadyExists",
		},
		{
			name:         "zero monthly budget",
			method:       http.MethodPost,
			path:         "/api/v1/budgets",
			body:         map[string]any{"category_id": food.ID, "month": 4, "year": 2024, "monthly_budget": "0"},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationError",
			expectedKey:  "monthly_budget",
		},
		{
			name:   "unknown sender",
			method: http.MethodPost,
			path:   "/api/v1/transfers",
			body: map[string]any{
				"description": "x", "amount": "1", "from_account_id": uuid.NewString(), "to_account_id": a.ID,
			},
			expectedCode: http.StatusNotFound,
			expectedKind: "SenderAccountNotFound",
		},
		{
			name:   "unknown recipient",
			method: http.MethodPost,
			path:   "/api/v1/transfers",
			body: map[string]any{
				"description": "x", "amount": "1", "from_account_id": a.ID, "to_account_id": uuid.NewString(),
			},
			expectedCode: http.StatusNotFound,
			expectedKind: "RecipientAccountNotFound",
		},
		{
			name:   "bad expense date",
			method: http.MethodPost,
			path:   "/api/v1/expenses",
			body: map[string]any{
				"description": "x", "expense_month": 3, "expense_year": 2024, "amount": "1",
				"account_id": a.ID, "date": "15/03/2024",
			},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationError",
			expectedKey:  "date",
		},
		{
			name:   "sub-cent expense amount",
			method: http.MethodPost,
			path:   "/api/v1/expenses",
			body: map[string]any{
				"description": "x", "expense_month": 3, "expense_year": 2024, "amount": "0.005",
				"account_id": a.ID, "date": "2024-03-15",
			},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationError",
			expectedKey:  "amount",
		},
		{
			name:   "sub-cent transfer amount",
			method: http.MethodPost,
			path:   "/api/v1/transfers",
			body: map[string]any{
				"description": "x", "amount": "1.001", "from_account_id": a.ID, "to_account_id": a.ID,
			},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationError",
			expectedKey:  "amount",
		},
		{
			name:         "sub-cent initial balance",
			method:       http.MethodPost,
			path:         "/api/v1/accounts",
			body:         map[string]any{"name": "B", "type": "CASH", "initial_balance": "10.999"},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationError",
			expectedKey:  "initial_balance",
		},
		{
			name:   "non positive income",
			method: http.MethodPost,
			path:   "/api/v1/incomes",
			body: map[string]any{
				"description": "x", "amount": "0", "account_id": a.ID,
			},
			expectedCode: http.StatusBadRequest,
			expectedKind: "ValidationError",
			expectedKey:  "amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, engine, tt.method, tt.path, tt.body)
			expectStatus(t, w, tt.expectedCode)

			body := decode[dto.ErrorResponse](t, w)
			if body.Kind != tt.expectedKind {
				t.Errorf("expected kind %s, got %s", tt.expectedKind, body.Kind)
			}
			if body.Error == "" || body.Code == "" {
				t.Errorf("expected error message and code, got %+v", body)
			}
			if tt.expectedKey == "" {
				return
			}
			for _, d := range body.Details {
				if d.Key == tt.expectedKey {
					return
				}
			}
			t.Errorf("expected a detail for %s, got %+v", tt.expectedKey, body.Details)
		})
	}
}

func TestAmountsKeepCentPrecision(t *testing.T) {
	engine := newEngine(t)
	a := createAccount(t, engine, "A")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/incomes", map[string]any{
		"description": "Salary", "amount": "100", "account_id": a.ID,
	})
	expectStatus(t, w, http.StatusCreated)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/expenses", map[string]any{
		"description": "Fee", "expense_month": 3, "expense_year": 2024, "amount": "0.005",
		"account_id": a.ID, "date": "2024-03-15",
	})
	expectStatus(t, w, http.StatusBadRequest)
	body := decode[dto.ErrorResponse](t, w)
	if len(body.Details) != 1 || body.Details[0].Value != "must have at most 2 decimal places" {
		t.Errorf("unexpected details: %+v", body.Details)
	}

	// Trailing zeros beyond the cent are not extra precision.
	w = doJSON(t, engine, http.MethodPost, "/api/v1/expenses", map[string]any{
		"description": "Fee", "expense_month": 3, "expense_year": 2024, "amount": "0.500",
		"account_id": a.ID, "date": "2024-03-15",
	})
	expectStatus(t, w, http.StatusCreated)
	expense := decode[dto.ExpenseResponse](t, w)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/expenses/"+expense.ID, nil)
	expectStatus(t, w, http.StatusNoContent)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/accounts/"+a.ID, nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[dto.AccountResponse](t, w); got.Balance != "100.00" {
		t.Errorf("expected balance 100.00, got %s", got.Balance)
	}
}

func TestDeleteReferencedEntities(t *testing.T) {
	engine := newEngine(t)
	a := createAccount(t, engine, "A")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/categories", map[string]any{"name": "Food"})
	expectStatus(t, w, http.StatusCreated)
	food := decode[dto.CategoryResponse](t, w)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/budgets", map[string]any{
		"category_id": food.ID, "month": 3, "year": 2024, "monthly_budget": "50",
	})
	expectStatus(t, w, http.StatusCreated)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/incomes", map[string]any{
		"description": "Salary", "amount": "100", "account_id": a.ID,
	})
	expectStatus(t, w, http.StatusCreated)

	tests := []struct {
		name string
		path string
		id   string
	}{
		{name: "account with movements", path: "/api/v1/accounts/", id: a.ID},
		{name: "category with a budget", path: "/api/v1/categories/", id: food.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, engine, http.MethodDelete, tt.path+tt.id, nil)
			expectStatus(t, w, http.StatusBadRequest)

			body := decode[dto.ErrorResponse](t, w)
			if body.Kind != "ValidationError" || body.Code != "LDG-020002" {
				t.Errorf("unexpected error: %+v", body)
			}
			if len(body.Details) != 1 || body.Details[0].Key != "entityId" || body.Details[0].Value != tt.id {
				t.Errorf("unexpected details: %+v", body.Details)
			}

			expectStatus(t, doJSON(t, engine, http.MethodGet, tt.path+tt.id, nil), http.StatusOK)
		})
	}
}
