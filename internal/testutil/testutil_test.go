package testutil_test

import (
	"testing"
	"time"

	"finpace/internal/errors"
	"finpace/internal/models"
	"finpace/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "categories", "transactions", "budgets", "goals", "investments", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestUser(t, first)

	var count int64
	if err := second.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected a fresh database, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}
	if user.Role != models.UserRoleOwner {
		t.Errorf("expected owner role, got %s", user.Role)
	}

	parent := testutil.CreateTestCategory(t, db, user.ID, nil)
	child := testutil.CreateTestCategory(t, db, user.ID, &parent.ID)
	if child.ParentID == nil || *child.ParentID != parent.ID {
		t.Errorf("expected child under %s, got %v", parent.ID, child.ParentID)
	}

	tx := testutil.CreateTestTransaction(t, db, user.ID, child.ID, 1000, true, time.Now())
	if tx.Amount != 1000 || !tx.IsIncome {
		t.Errorf("unexpected transaction: amount=%d income=%v", tx.Amount, tx.IsIncome)
	}

	budget := testutil.CreateTestBudget(t, db, user.ID, child.ID, 3, 2024)
	if budget.Amount != 10000 {
		t.Errorf("expected budget amount 10000, got %d", budget.Amount)
	}

	goal := testutil.CreateTestGoal(t, db, user.ID, 500, 100)
	if goal.Status != models.GoalStatusActive {
		t.Errorf("expected active goal, got %s", goal.Status)
	}

	inv := testutil.CreateTestInvestment(t, db, user.ID, models.AssetTypeCrypto)
	if inv.Quantity != 10.0 {
		t.Errorf("expected quantity 10.0, got %f", inv.Quantity)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrBudgetNotFound, "custom message")
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}

func TestAssertAppErrorIs(t *testing.T) {
	err := errors.WithMessage(errors.ErrCategoryCycle, "parent is a descendant")
	testutil.AssertAppErrorIs(t, err, errors.ErrCategoryCycle)
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

func TestAssertRowCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	testutil.CreateTestGoal(t, db, user.ID, 1000, 0)
	testutil.CreateTestGoal(t, db, user.ID, 2000, 0)

	testutil.AssertRowCount(t, db, &models.Goal{}, 2, "user_id = ?", user.ID)
	testutil.AssertRowCount(t, db, &models.Goal{}, 0, "target_amount > ?", 5000)
}
