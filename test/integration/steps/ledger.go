package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"

	"github.com/cucumber/godog"
)

// registerLedgerSteps registers steps that arrange and inspect ledger state.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^an account "([^"]*)" with a balance of "([^"]*)"$`, anAccountWithABalanceOf)
	ctx.Step(`^a category "([^"]*)"$`, aCategory)
	ctx.Step(`^a budget "([^"]*)" of "([^"]*)" for category "([^"]*)" in (\d+)/(\d+)$`, aBudgetOfForCategoryIn)
	ctx.Step(`^the account "([^"]*)" should have a balance of "([^"]*)"$`, theAccountShouldHaveABalanceOf)
	ctx.Step(`^the budget "([^"]*)" should have used "([^"]*)" leaving "([^"]*)" at "([^"]*)" percent$`, theBudgetShouldHaveUsed)
	ctx.Step(`^a "([^"]*)" event should have been published$`, anEventShouldHaveBeenPublished)
	ctx.Step(`^(\d+) events? should have been published$`, eventsShouldHaveBeenPublished)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
}

// create posts payload and remembers the new resource id under name.
func (tc *TestContext) create(endpoint, name string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	status, respBody, err := tc.do(http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("creating %s returned %d: %s", name, status, string(respBody))
	}

	id, err := responseField(respBody, "id")
	if err != nil {
		return err
	}
	tc.ids[name] = fmt.Sprintf("%v", id)
	return nil
}

// fetch reads a resource remembered under name.
func (tc *TestContext) fetch(collection, name string) ([]byte, error) {
	id, ok := tc.ids[name]
	if !ok {
		return nil, fmt.Errorf("nothing remembered as %q", name)
	}

	status, body, err := tc.do(http.MethodGet, "/api/v1/"+collection+"/"+id, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("reading %s returned %d: %s", name, status, string(body))
	}
	return body, nil
}

func anAccountWithABalanceOf(ctx context.Context, name, balance string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.create("/api/v1/accounts", name, map[string]any{
		"name":            name,
		"type":            "BANK_ACCOUNT",
		"initial_balance": json.Number(balance),
	})
}

func aCategory(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.create("/api/v1/categories", name, map[string]any{"name": name})
}

func aBudgetOfForCategoryIn(ctx context.Context, name, target, categoryName string, month, year int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	categoryID, ok := tc.ids[categoryName]
	if !ok {
		return fmt.Errorf("nothing remembered as %q", categoryName)
	}
	return tc.create("/api/v1/budgets", name, map[string]any{
		"category_id":    categoryID,
		"month":          month,
		"year":           year,
		"monthly_budget": json.Number(target),
	})
}

func theAccountShouldHaveABalanceOf(ctx context.Context, name, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body, err := tc.fetch("accounts", name)
	if err != nil {
		return err
	}
	balance, err := responseField(body, "balance")
	if err != nil {
		return err
	}
	if balance != expected {
		return fmt.Errorf("account %s expected balance %s, got %v", name, expected, balance)
	}
	return nil
}

func theBudgetShouldHaveUsed(ctx context.Context, name, used, balance, percentage string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body, err := tc.fetch("budgets", name)
	if err != nil {
		return err
	}

	expected := map[string]string{
		"monthly_budget_used":            used,
		"monthly_budget_balance":         balance,
		"monthly_budget_used_percentage": percentage,
	}
	for field, want := range expected {
		got, err := responseField(body, field)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("budget %s expected %s %s, got %v", name, field, want, got)
		}
	}
	return nil
}

func anEventShouldHaveBeenPublished(ctx context.Context, eventType string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var seen []string
	for _, event := range tc.publisher.Events() {
		if string(event.Type) == eventType {
			return nil
		}
		seen = append(seen, string(event.Type))
	}
	return fmt.Errorf("no %s event published, got %v", eventType, seen)
}

func eventsShouldHaveBeenPublished(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if got := len(tc.publisher.Events()); got != count {
		return fmt.Errorf("expected %d events, got %d", count, got)
	}
	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	entity, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := tc.db.DbConn.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	if count := entitySlicePtr.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}
