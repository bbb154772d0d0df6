package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finpace/internal/config"
	"finpace/internal/logger"
	"finpace/internal/pricing"
	"finpace/internal/server"
	"finpace/internal/testutil"
	"finpace/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	config.Set(&config.Config{
		JWTSecret:          "integration-test-secret",
		JWTAccessDuration:  15 * time.Minute,
		JWTRefreshDuration: time.Hour,
	})
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	router := server.NewRouter(server.NewServices(db, pricing.StaticFetcher{}), []string{"*"})
	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// expectStatus fails the test when the response code differs from want.
func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// expectErrorCode checks the error envelope's code.
func expectErrorCode(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if errObj["code"] != want {
		t.Errorf("expected error code %s, got %v", want, errObj["code"])
	}
}

// registerUser registers a new owner and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	return app.registerWithRole(t, email, password, "")
}

func (app *testApp) registerWithRole(t *testing.T, email, password, role string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User","role":%q}`, email, password, role)
	rec := app.request(http.MethodPost, "/api/v1/auth/register", body, "")
	expectStatus(t, rec, http.StatusCreated)
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request(http.MethodPost, "/api/v1/auth/login", body, "")
	expectStatus(t, rec, http.StatusOK)
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// createCategory creates a category and returns its ID. parentID may be empty.
func (app *testApp) createCategory(t *testing.T, token, name, parentID string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q}`, name)
	if parentID != "" {
		body = fmt.Sprintf(`{"name":%q,"parent_id":%q}`, name, parentID)
	}
	rec := app.request(http.MethodPost, "/api/v1/categories", body, token)
	expectStatus(t, rec, http.StatusCreated)
	return parseJSON(t, rec)["category"].(map[string]interface{})["id"].(string)
}

// createTransaction records a transaction on date (YYYY-MM-DD) and returns its ID.
func (app *testApp) createTransaction(t *testing.T, token, categoryID string, amount int64, isIncome bool, date string) string {
	t.Helper()
	body := fmt.Sprintf(`{"category_id":%q,"amount":%d,"is_income":%t,"date":%q,"description":"test"}`,
		categoryID, amount, isIncome, date)
	rec := app.request(http.MethodPost, "/api/v1/transactions", body, token)
	expectStatus(t, rec, http.StatusCreated)
	return parseJSON(t, rec)["transaction"].(map[string]interface{})["id"].(string)
}
