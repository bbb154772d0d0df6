package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"finpace/internal/config"
	apperrors "finpace/internal/errors"
	"finpace/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.Set(&config.Config{
		JWTSecret:          "test-secret",
		JWTAccessDuration:  30 * time.Minute,
		JWTRefreshDuration: 7 * 24 * time.Hour,
	})
}

type fakeUsers map[string]*models.User

func (f fakeUsers) GetUserByID(id string) (*models.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := parseBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got %v", body)
	}
	code, _ := errObj["code"].(string)
	return code
}
