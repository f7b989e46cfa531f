// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/e-budget/backend/config"
	"github.com/e-budget/backend/internal/application/usecase/usecasetest"
	"github.com/e-budget/backend/internal/infra/cache"
	"github.com/e-budget/backend/internal/infra/dependency"
	"github.com/e-budget/backend/internal/integration/entrypoint/middleware"
	"github.com/e-budget/backend/internal/integration/persistence/model"
	"github.com/e-budget/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	status       int
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Names given to created resources, substituted as {{name}}
	ids map[string]string

	// Infrastructure
	db        *mock.Db
	redis     *mock.Redis
	publisher *usecasetest.RecordingPublisher
	cfg       *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			ids:            make(map[string]string),
			db:             mock.NewDb("ledger_integration", model.All()...),
			redis:          mock.NewRedis(),
			publisher:      &usecasetest.RecordingPublisher{},
			cfg:            config.Load(),
		}
		tc.cfg.Server.Environment = "test"

		if err := tc.db.ClearDB(); err != nil {
			return ctx, err
		}
		if err := tc.redis.Clear(ctx); err != nil {
			return ctx, err
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil {
			tc.stop()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerLedgerSteps(ctx)
}

// registerAPISteps registers server and HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the rate limit allows (\d+) requests per minute$`, theRateLimitAllowsRequestsPerMinute)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I send (\d+) "([^"]*)" requests to "([^"]*)"$`, iSendRequestsTo)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// start serves the full application over the scenario's database and a
// miniredis backed rate limiter.
func (tc *TestContext) start() {
	tc.stop()

	injector := dependency.NewInjector(tc.cfg, tc.db.DbConn, dependency.Options{
		Publisher: tc.publisher,
		RateLimitStore: middleware.NewRedisStore(
			tc.redis.Client, tc.cfg.RateLimit.Requests, tc.cfg.RateLimit.Window,
		),
		DBHealthChecker:    func() bool { return tc.db.DbConn != nil },
		CacheHealthChecker: cache.HealthChecker(tc.redis.Client),
	})
	tc.server = httptest.NewServer(injector.Router.Setup(tc.cfg.Server.Environment))
}

func (tc *TestContext) stop() {
	if tc.server != nil {
		tc.server.Close()
		tc.server = nil
	}
}

// expand replaces {{name}} with the id remembered under name.
func (tc *TestContext) expand(content string) string {
	for name, id := range tc.ids {
		content = strings.ReplaceAll(content, "{{"+name+"}}", id)
	}
	return content
}

// do sends a request without touching the scenario's last response.
func (tc *TestContext) do(method, endpoint string, body []byte) (int, []byte, error) {
	if tc.server == nil {
		return 0, nil, fmt.Errorf("test server is not running")
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.expand(endpoint), reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// send issues a request and keeps its response for the assertion steps.
// Placeholders in the body are expanded too.
func (tc *TestContext) send(method, endpoint string, body []byte) error {
	if body != nil {
		body = []byte(tc.expand(string(body)))
	}

	status, respBody, err := tc.do(method, endpoint, body)
	if err != nil {
		return err
	}

	tc.status = status
	tc.responseBody = respBody
	return nil
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.start()
	return nil
}

func theRateLimitAllowsRequestsPerMinute(ctx context.Context, requests int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.cfg.RateLimit.Enabled = true
	tc.cfg.RateLimit.Requests = requests
	tc.cfg.RateLimit.Window = time.Minute
	tc.start()
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.send(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.send(method, endpoint, []byte(body.Content))
}

func iSendRequestsTo(ctx context.Context, count int, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	for i := 0; i < count; i++ {
		if err := tc.send(method, endpoint, nil); err != nil {
			return err
		}
	}
	return nil
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return nil
}
