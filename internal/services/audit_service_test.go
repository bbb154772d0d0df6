package services

import (
	"encoding/json"
	"testing"

	"finpace/internal/models"
	"finpace/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	t.Run("stores entry with changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		user := testutil.CreateTestUser(t, db)
		svc.Log(user.ID, "UPDATE_BUDGET", "budget", "b-1", "10.0.0.1", map[string]interface{}{"amount": 5000})

		var entry models.AuditLog
		if err := db.First(&entry, "user_id = ?", user.ID).Error; err != nil {
			t.Fatalf("expected audit entry: %v", err)
		}
		if entry.Action != "UPDATE_BUDGET" || entry.ResourceID != "b-1" || entry.IPAddress != "10.0.0.1" {
			t.Errorf("unexpected entry: %+v", entry)
		}
		var changes map[string]interface{}
		if err := json.Unmarshal([]byte(entry.Changes), &changes); err != nil {
			t.Fatalf("changes are not JSON: %v", err)
		}
		if changes["amount"].(float64) != 5000 {
			t.Errorf("expected amount 5000, got %v", changes["amount"])
		}
	})

	t.Run("redacts sensitive keys", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		user := testutil.CreateTestUser(t, db)
		svc.Log(user.ID, "UPDATE_PROFILE", "user", user.ID, "", map[string]interface{}{
			"Password": "hunter22",
			"email":    "new@example.com",
		})

		var entry models.AuditLog
		if err := db.First(&entry, "user_id = ?", user.ID).Error; err != nil {
			t.Fatalf("expected audit entry: %v", err)
		}
		var changes map[string]interface{}
		if err := json.Unmarshal([]byte(entry.Changes), &changes); err != nil {
			t.Fatalf("changes are not JSON: %v", err)
		}
		if changes["Password"] != redacted {
			t.Errorf("expected password redacted, got %v", changes["Password"])
		}
		if changes["email"] != "new@example.com" {
			t.Errorf("expected email kept, got %v", changes["email"])
		}
	})

	t.Run("empty changes stored as empty string", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		svc.Log("01920000-0000-7000-8000-0000000000ff", "DELETE_ACCOUNT", "user", "", "", map[string]interface{}{})

		var entry models.AuditLog
		if err := db.First(&entry, "action = ?", "DELETE_ACCOUNT").Error; err != nil {
			t.Fatalf("tombstone for a deleted user should be stored: %v", err)
		}
		if entry.Changes != "" {
			t.Errorf("expected no changes, got %q", entry.Changes)
		}
	})
}

func TestRedactChanges(t *testing.T) {
	in := map[string]interface{}{"refresh_token": "abc", "name": "Food"}
	out := redactChanges(in)
	if out["refresh_token"] != redacted || out["name"] != "Food" {
		t.Errorf("unexpected redaction: %v", out)
	}
	if in["refresh_token"] != "abc" {
		t.Error("input map must not be modified")
	}
}
