package testutil

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	apperrors "finpace/internal/errors"
)

// AssertAppError checks that err unwraps to an *AppError carrying code.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()

	appErr := requireAppError(t, err, code)
	if appErr.Code != code {
		t.Errorf("expected error code %q, got %q (message: %s)", code, appErr.Code, appErr.Message)
	}
}

// AssertAppErrorIs checks err against a sentinel by code and HTTP status, so
// a WithMessage copy of the sentinel still matches.
func AssertAppErrorIs(t *testing.T, err error, sentinel *apperrors.AppError) {
	t.Helper()

	appErr := requireAppError(t, err, sentinel.Code)
	if appErr.Code != sentinel.Code || appErr.StatusCode != sentinel.StatusCode {
		t.Errorf("expected %s (%d), got %s (%d): %s",
			sentinel.Code, sentinel.StatusCode, appErr.Code, appErr.StatusCode, appErr.Message)
	}
}

func requireAppError(t *testing.T, err error, code string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError %s, got nil", code)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertRowCount counts rows of model matching query and args.
func AssertRowCount(t *testing.T, db *gorm.DB, model interface{}, want int64, query string, args ...interface{}) {
	t.Helper()

	var got int64
	if err := db.Model(model).Where(query, args...).Count(&got).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %d rows matching %q, got %d", want, query, got)
	}
}
